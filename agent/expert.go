package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Tool is a function an expert can call during a chat turn.
type Tool interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// Toolbox dispatches a function call to the matching Tool.
type Toolbox func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// NewToolbox builds a Toolbox dispatching on the declared function names.
func NewToolbox[T Tool](tools []T) Toolbox {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, tool := range tools {
			if tool.Declaration().Name == call.Name {
				return tool.Call(ctx, call.ID, call.Args)
			}
		}
		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"error": fmt.Sprintf("unknown function %s", call.Name),
			},
		}
	}
}

// NewDeclarations collects the declarations of a set of tools.
func NewDeclarations[T Tool](tools []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		result = append(result, tool.Declaration())
	}
	return result
}

// Expert is a chat with a specialized system instruction and toolbox.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Toolbox     Toolbox
	chat        *genai.Chat
}

// Start creates the Gemini chat backing this expert.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the expert, resolving function calls through the toolbox
// until the expert produces a text response.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if e.Toolbox == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}

		// Errors travel back to the model inside the response.
		fresp := e.Toolbox(ctx, part0.FunctionCall)

		// Feed the function response back until we get a text answer.
		return e.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

// Declaration exposes the expert itself as a callable tool, so a facilitator
// can delegate questions to it.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call asks this expert a question on behalf of another chat.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:       id,
		Name:     e.Name,
		Response: map[string]any{},
	}

	question, ok := args["question"].(string)
	if !ok {
		fresp.Response["error"] = fmt.Sprintf("invalid type got %T, expected string", args["question"])
		return fresp
	}

	response, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		fresp.Response["error"] = fmt.Sprintf("expert call failed: %v", err)
		return fresp
	}

	r := response.Parts[0].Text
	log.Printf("Expert %q: \n        %q\n        %q", e.Name, question, r)
	fresp.Response["output"] = r
	return fresp
}
