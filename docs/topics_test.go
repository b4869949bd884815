package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded with GetTopic.
	// 2. Every .md file in this directory (excluding readme.md itself) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topic := strings.TrimSpace(matches[1])
			topicsInReadme = append(topicsInReadme, topic)
		}
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}

	for _, file := range files {
		base := filepath.Base(file)
		if base == "readme.md" {
			continue
		}
		name := strings.TrimSuffix(base, ".md")
		found := false
		for _, topic := range topicsInReadme {
			if topic == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics found")
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Error("readme should not be listed as a topic")
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

// TestTopicStructure parses every topic and checks it opens with a level-1 heading,
// so that `pfs topic` always renders a titled document.
func TestTopicStructure(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			mdParser := goldmark.DefaultParser()
			root := mdParser.Parse(text.NewReader(content))

			first := root.FirstChild()
			if first == nil {
				t.Fatalf("%s is empty", file)
			}
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("%s does not start with a heading", file)
			}
			if heading.Level != 1 {
				t.Errorf("%s starts with a level %d heading, want level 1", file, heading.Level)
			}
		})
	}
}
