package composer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/shubham-dpworld/initializr-ui/internal/metadata/loader"
	"github.com/shubham-dpworld/initializr-ui/pkg/compose"
	"github.com/shubham-dpworld/initializr-ui/pkg/composer"
	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
)

const sessionPayload = `{
  "type": {"default": "maven-project", "values": [{"id": "maven-project", "name": "Maven"}, {"id": "gradle-project", "name": "Gradle"}]},
  "language": {"default": "java", "values": [{"id": "java"}, {"id": "kotlin"}]},
  "packaging": {"default": "jar", "values": [{"id": "jar"}, {"id": "war"}]},
  "bootVersion": {"default": "3.3.0", "values": [{"id": "3.3.0"}, {"id": "3.2.6"}]},
  "javaVersion": {"default": "17", "values": [{"id": "17"}, {"id": "21"}]},
  "groupId": {"default": "com.acme"},
  "artifactId": {"default": "shop"},
  "name": {"default": "shop"},
  "description": {"default": "Shop service"},
  "packageName": {"default": "com.acme.shop"},
  "version": {"default": "1.0.0"},
  "dependencies": {"values": [
    {"name": "Web", "values": [
      {"id": "web", "name": "Spring Web", "description": "Build web applications"}
    ]},
    {"name": "SQL", "values": [
      {"id": "data-jpa", "name": "Spring Data JPA", "versions": [
        {"id": "3.1", "name": "3.1"},
        {"id": "3.2", "name": "3.2", "default": true}
      ]}
    ]}
  ]},
  "boilerplateCodeOptions": [
    {"id": "crud-rest", "name": "CRUD REST", "type": "rest-api"}
  ]
}`

// newComposer wires the loader against an in-memory filesystem holding the
// sample payload so no test touches the network or disk.
func newComposer(options ...composer.Option) *composer.Composer {
	files := fstest.MapFS{
		"metadata.json": &fstest.MapFile{Data: []byte(sessionPayload)},
	}
	base := []composer.Option{
		composer.WithLoader(loader.New(metadata.NewLoaderOptions(
			metadata.WithFileSystem(files),
		))),
	}
	return composer.New(append(base, options...)...)
}

func openSession(t *testing.T, c *composer.Composer) *composer.Session {
	t.Helper()

	session, err := c.Load(context.Background(), metadata.SourceFromFS("metadata.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return session
}

func TestLoadSeedsSessionFromSchema(t *testing.T) {
	session := openSession(t, newComposer())

	if session.State.Type != "maven-project" {
		t.Fatalf("Type = %q, want %q", session.State.Type, "maven-project")
	}
	if session.State.GroupID != "com.acme" {
		t.Fatalf("GroupID = %q, want %q", session.State.GroupID, "com.acme")
	}
	if got := session.State.DependencyVersions["data-jpa"]; got != "3.2" {
		t.Fatalf("seeded data-jpa version = %q, want %q", got, "3.2")
	}
	if len(session.State.Dependencies) != 0 {
		t.Fatalf("dependencies pre-selected: %v", session.State.Dependencies)
	}
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	files := fstest.MapFS{
		"metadata.json": &fstest.MapFile{Data: []byte(`{"type": [`)},
	}
	c := composer.New(composer.WithLoader(loader.New(metadata.NewLoaderOptions(
		metadata.WithFileSystem(files),
	))))

	_, err := c.Load(context.Background(), metadata.SourceFromFS("metadata.json"))
	if err == nil {
		t.Fatal("Load() succeeded on malformed payload")
	}
}

func TestLoadRequiresSource(t *testing.T) {
	if _, err := newComposer().Load(context.Background(), nil); err == nil {
		t.Fatal("Load(nil source) succeeded")
	}
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newComposer().Load(ctx, metadata.SourceFromFS("metadata.json"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestSessionGenerateURL(t *testing.T) {
	session := openSession(t, newComposer(composer.WithBaseURL("https://start.example.com")))
	session.State.ToggleDependency("web")
	session.State.ToggleDependency("data-jpa")

	got, err := session.GenerateURL()
	if err != nil {
		t.Fatalf("GenerateURL() error = %v", err)
	}

	if !strings.HasPrefix(got, "https://start.example.com/starter.zip?type=maven-project&") {
		t.Fatalf("unexpected URL prefix: %s", got)
	}
	if !strings.Contains(got, "dependencies=web%2Cdata-jpa%3A3.2") {
		t.Fatalf("URL missing dependency tokens: %s", got)
	}
}

func TestSessionGenerateURLMissingAxis(t *testing.T) {
	session := openSession(t, newComposer())
	session.State.BootVersion = ""

	_, err := session.GenerateURL()
	var missing *compose.MissingSelectionError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingSelectionError", err)
	}
}

func TestSessionSummarySkipsStaleIDs(t *testing.T) {
	session := openSession(t, newComposer())
	session.State.ToggleDependency("web")
	session.State.Dependencies = append(session.State.Dependencies, "vanished")
	session.State.BoilerplateCodes = []string{"gone", "crud-rest"}

	summary, err := session.Summary()
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if len(summary.Dependencies) != 1 || summary.Dependencies[0].ID != "web" {
		t.Fatalf("summary dependencies = %+v", summary.Dependencies)
	}
	if len(summary.Boilerplates) != 1 || summary.Boilerplates[0].ID != "crud-rest" {
		t.Fatalf("summary boilerplates = %+v", summary.Boilerplates)
	}
}

func TestRenderDefaultRenderer(t *testing.T) {
	c := newComposer()
	session := openSession(t, c)
	session.State.ToggleDependency("data-jpa")

	out, err := c.Render(context.Background(), session, "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"maven-project",
		"com.acme:shop:1.0.0",
		"data-jpa:3.2",
		"/starter.zip?",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("rendered summary missing %q:\n%s", want, text)
		}
	}
}

func TestRenderUnknownRenderer(t *testing.T) {
	c := newComposer()
	session := openSession(t, c)

	if _, err := c.Render(context.Background(), session, "pdf"); err == nil {
		t.Fatal("Render() succeeded with an unregistered renderer")
	}
}

func TestRegistryListsBuiltins(t *testing.T) {
	c := composer.New()

	names := c.Registry().List()
	for _, want := range []string{"html", "text"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("registry %v missing %q", names, want)
		}
	}
}

func TestSeedMatchesSelectionSeed(t *testing.T) {
	session := openSession(t, newComposer())

	seeded := composer.Seed(session.Schema)
	if seeded.Type != session.State.Type || seeded.GroupID != session.State.GroupID {
		t.Fatalf("Seed() = %+v, session state = %+v", seeded, session.State)
	}
}
