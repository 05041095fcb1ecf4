package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "bos@manjaro:~$", c.Identity.Prompt())
	assert.Equal(t, "bos - Linux Enthusiast & Web Learner", c.Identity.Whoami)
	assert.Equal(t, "about.txt  projects/  skills/  contact.sh  blog/", c.Listing.Short)
	assert.True(t, strings.HasPrefix(c.Listing.Long, "total 28K\n"))
	assert.True(t, strings.HasSuffix(c.Listing.Long, "blog/"))
	assert.Equal(t, []string{"web-profil", "web-lan", "linux-setup"}, c.ProjectIDs())
	assert.Contains(t, c.Neofetch.Art, ".--.")
	assert.Len(t, c.Neofetch.Fields, 9)
	assert.Equal(t, Skill{Name: "VS Code", Level: 85}, c.Neofetch.Skills[4])
	assert.True(t, strings.HasPrefix(c.Help, "Available commands:"))
}

func TestDefault_AboutAndBlog(t *testing.T) {
	c := Default()

	about, ok := c.Lookup(KindFile, "about.txt")
	require.True(t, ok)
	assert.Contains(t, about, "ABOUT ME")
	assert.Contains(t, about, "Role     : Mahasiswa | Linux Enthusiast")
	assert.False(t, strings.HasSuffix(about, "\n"))

	blog, ok := c.Lookup(KindFile, "blog.txt")
	require.True(t, ok)
	assert.Contains(t, blog, "Coming soon!")
}

func TestDefault_Ping(t *testing.T) {
	c := Default()

	assert.Equal(t, "PING example.com (192.168.1.1) 56(84) bytes of data.", c.Ping.Expand(c.Ping.Header, "example.com"))
	require.Len(t, c.Ping.Replies, 3)
	assert.Equal(t, 300*time.Millisecond, c.Ping.Replies[0].Delay)
	assert.Equal(t, 600*time.Millisecond, c.Ping.Replies[1].Delay)
	assert.Equal(t, 900*time.Millisecond, c.Ping.Replies[2].Delay)
	assert.Equal(t,
		"\n--- example.com ping statistics ---\n2 packets transmitted, 2 received, 0% packet loss",
		c.Ping.Expand(c.Ping.Replies[2].Text, "example.com"))
}

func TestGet(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		kind    Kind
		key     string
		wantErr error
		want    string
	}{
		{name: "short listing", kind: KindListing, key: "short", want: c.Listing.Short},
		{name: "identity", kind: KindIdentity, want: c.Identity.Whoami},
		{name: "help", kind: KindHelp, want: c.Help},
		{name: "missing file", kind: KindFile, key: "secrets.txt", wantErr: ErrNotFound},
		{name: "bad listing key", kind: KindListing, key: "wide", wantErr: ErrNotFound},
		{name: "missing project", kind: KindProject, key: "nope", wantErr: ErrNotFound},
		{name: "unknown kind", kind: Kind("video"), wantErr: ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Get(tt.kind, tt.key)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProject_Markdown(t *testing.T) {
	c := Default()

	p, ok := c.Project("web-lan")
	require.True(t, ok)

	md := p.Markdown()
	assert.Contains(t, md, "### Web LAN Testing")
	assert.Contains(t, md, "**Tech Stack:** PHP, MySQL, Apache, JavaScript")
	assert.Contains(t, md, "- Device discovery")
	assert.Contains(t, md, "**Progress:** 60%")
	assert.NotContains(t, md, "**Link:**")

	p, ok = c.Project("linux-setup")
	require.True(t, ok)
	assert.Contains(t, p.Markdown(), "**Link:** GitHub Repository")

	got, ok := c.Lookup(KindProject, "linux-setup")
	require.True(t, ok)
	assert.Equal(t, p.Markdown(), got)

	_, ok = c.Project("unknown")
	assert.False(t, ok)
}

func TestLoad_RejectsInvalidDocuments(t *testing.T) {
	base := string(defaultContent)

	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed yaml", doc: "identity: [unterminated"},
		{name: "unknown field", doc: base + "\nsurprise: true\n"},
		{name: "empty document", doc: "identity: {user: a, host: b}\n"},
		{name: "duplicate project", doc: strings.Replace(base, "id: web-lan\n", "id: web-profil\n", 1)},
		{name: "skill out of range", doc: strings.Replace(base, "level: 80", "level: 180", 1)},
		{name: "ping delays out of order", doc: strings.Replace(base, "delay: 600ms", "delay: 100ms", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := strings.Replace(string(defaultContent), "user: bos", "user: ada", 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ada@manjaro:~$", c.Identity.Prompt())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default().Identity, c.Identity)
}
