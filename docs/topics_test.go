package docs

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopicsListedInReadme ensures the documentation stays in sync with
// itself: every topic file shipped with the tool must be mentioned in
// readme.md, and must be loadable by the topic command.
func TestTopicsListedInReadme(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("cannot load readme: %v", err)
	}
	source := []byte(readme)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	listed := make(map[string]bool)
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if span, ok := n.(*ast.CodeSpan); ok {
				listed[string(span.Text(source))] = true
			}
		}
		return ast.WalkContinue, nil
	})

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("cannot list topics: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics found")
	}
	for _, topic := range topics {
		if !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q cannot be loaded: %v", topic, err)
		}
	}
}

// TestTopicsStartWithTitle ensures each topic renders with a proper title.
func TestTopicsStartWithTitle(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("cannot list topics: %v", err)
	}
	for _, topic := range append(topics, "readme") {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("topic %q cannot be loaded: %v", topic, err)
			continue
		}
		source := []byte(content)
		doc := goldmark.DefaultParser().Parse(text.NewReader(source))
		heading, ok := doc.FirstChild().(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 title", topic)
		}
	}
}
