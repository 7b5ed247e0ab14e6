package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/b2bsite/internal/contact"
	"github.com/nfrund/b2bsite/internal/content"
	"github.com/nfrund/b2bsite/internal/pubsub"
)

func TestRoutes(t *testing.T) {
	nav := content.Nav{
		Leading: []content.Link{{Label: "Home", Href: "/"}},
		Menus: []content.Menu{{ID: "solutions", Label: "Solutions", Items: []content.Link{
			{Label: "Syndication", Href: "/solutions/syndication"},
		}}},
		Trailing: []content.Link{{Label: "Contact", Href: "/contact"}},
		CTA:      content.Link{Label: "Get Started", Href: "/get-started"},
	}

	assert.Equal(t, []Route{
		{Group: GroupMain, Label: "Home", Href: "/", Built: true},
		{Group: "Solutions", Label: "Syndication", Href: "/solutions/syndication"},
		{Group: GroupMain, Label: "Contact", Href: "/contact", Built: true},
		{Group: GroupCTA, Label: "Get Started", Href: "/get-started"},
	}, Routes(nav))
}

func TestWriteRoutesTable_GroupsInFirstAppearanceOrder(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteRoutesTable(&b, []Route{
		{Group: GroupMain, Label: "Home", Href: "/", Built: true},
		{Group: "Solutions", Label: "Data", Href: "/solutions/data"},
		{Group: GroupMain, Label: "Contact", Href: "/contact", Built: true},
	}))
	out := b.String()

	assert.Less(t, bytes.Index(b.Bytes(), []byte("MAIN")), bytes.Index(b.Bytes(), []byte("SOLUTIONS")))
	assert.Less(t, bytes.Index(b.Bytes(), []byte("Contact")), bytes.Index(b.Bytes(), []byte("SOLUTIONS")),
		"trailing links join the main group")
	assert.Contains(t, out, "not built")
}

func TestWriteTopicsTable(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteTopicsTable(&b, nil))
	assert.Contains(t, b.String(), "No topics found")

	b.Reset()
	require.NoError(t, WriteTopicsTable(&b, []pubsub.Topic{{Name: "page.mounted", Description: "A page instance was mounted"}}))
	assert.Contains(t, b.String(), "page.mounted")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestWriteValidation(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteValidation(&b, Validation{
		Errors: contact.Errors{contact.Email: "Please enter a valid email address"},
	}))
	out := b.String()
	assert.Contains(t, out, "Please enter a valid email address")
	assert.Equal(t, 3, bytes.Count(b.Bytes(), []byte("ok")))
}
