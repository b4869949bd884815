// Package docs embeds the user documentation topics shown by `pfs topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topicFiles embed.FS

// GetTopic returns the markdown content of one topic. The pseudo-topic "*"
// expands to every topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}

	content, err := topicFiles.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the content of several topics, one blank line apart.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists every available topic, sorted. The readme is the table
// of contents, not a topic itself.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(topicFiles, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, file := range files {
		name := strings.TrimSuffix(file, ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
