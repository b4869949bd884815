// Package agent implements the interactive AI assistant behind `pfs assist`.
//
// The assistant is a facilitator chat that can call a profile advisor expert
// to read the active user's financial state. Every question consumes one unit
// of the session's question quota; the quota and the transcript reset on user
// switch.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mvezin/finstate"
	"google.golang.org/genai"
)

// Agent runs the chat session with the user.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	session     *finstate.Session
	Facilitator *Expert
	Experts     []*Expert
}

// New creates an Agent bound to a session. The session provides the question
// quota and records the transcript; w and r are the agent's terminal
// (typically os.Stdout and os.Stdin).
func New(w io.Writer, r io.Reader, session *finstate.Session, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		session:     session,
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start creates the Gemini chats for the facilitator and every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive REPL session. Extra prompts, if any, are played
// before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.w, "Welcome to pfs assist, %s. Type 'bye' to exit.\n", a.session.ActiveUser)

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush queued prompts first, then read from the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		if !a.session.UseAssistQuestion() {
			fmt.Fprintln(a.w, "You have used all your questions for this session. Switch users to reset the quota.")
			continue
		}
		a.session.Record("user", input)

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		answer := content.Parts[0].Text
		a.session.Record("assistant", answer)
		fmt.Fprintln(a.w, answer)
	}
}
