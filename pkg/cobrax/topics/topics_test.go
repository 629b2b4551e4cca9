package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/ddsbatch/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"safety.md":         {Data: []byte("# Safety\n\nSources are deleted.")},
		"option-dry-run.md": {Data: []byte("Dry run lists invocations.")},
		"rules.txt":         {Data: []byte("Rules are regular expressions.")},
		"notes.json":        {Data: []byte("{}")},
		"nested/scale.md":   {Data: []byte("Scale factors.")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	t.Run("default_extensions", func(t *testing.T) {
		tm := topics.New(testSource(), topics.Options{})
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"option-dry-run", "rules", "safety", "scale"}, tm.ListTopics())

		topic, ok := tm.GetTopic("safety")
		require.True(t, ok)
		assert.Equal(t, "safety.md", topic.FilePath)
		assert.Contains(t, topic.Content, "Sources are deleted")

		_, ok = tm.GetTopic("notes")
		assert.False(t, ok)
	})

	t.Run("custom_extensions", func(t *testing.T) {
		tm := topics.New(testSource(), topics.Options{Extensions: []string{".json"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("flag_style_lookup", func(t *testing.T) {
		tm := topics.New(testSource(), topics.Options{})
		require.NoError(t, tm.Scan())

		topic, ok := tm.GetTopic("--dry-run")
		require.True(t, ok)
		assert.Equal(t, "option-dry-run", topic.Name)
	})
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "ddsbatch", Run: func(*cobra.Command, []string) {}}
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	_, err := topics.Initialize(root, testSource(), topics.Options{})
	require.NoError(t, err)
	return root, &out
}

func TestTopicsCommand(t *testing.T) {
	t.Run("lists_topics", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"topics"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "General topics:")
		assert.Contains(t, out.String(), "  safety")
		assert.Contains(t, out.String(), "  --dry-run")
	})

	t.Run("shows_topic", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"topics", "rules"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Rules are regular expressions.", out.String())
	})

	t.Run("unknown_topic", func(t *testing.T) {
		root, _ := newRoot(t)
		root.SetArgs([]string{"topics", "nope"})
		err := root.Execute()
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "nope"))
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &topics.PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := topics.NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
