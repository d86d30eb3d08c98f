package commands

import (
	"fmt"
	"strings"

	"github.com/shubham-dpworld/initializr-ui/pkg/composer"
)

// applyOverride mutates session state from a key=value pair. Keys use the
// wire-contract field names so scripted invocations read like the request
// they produce.
func applyOverride(session *composer.Session, raw string) error {
	key, value, found := strings.Cut(raw, "=")
	if !found {
		return fmt.Errorf("invalid --set %q: expected key=value", raw)
	}
	key = strings.TrimSpace(key)

	switch key {
	case "type":
		session.State.Type = value
	case "language":
		session.State.Language = value
	case "packaging":
		session.State.Packaging = value
	case "bootVersion":
		session.State.BootVersion = value
	case "javaVersion":
		session.State.JavaVersion = value
	case "groupId":
		session.State.GroupID = value
	case "artifactId":
		session.State.ArtifactID = value
	case "name":
		session.State.Name = value
	case "description":
		session.State.Description = value
	case "packageName":
		session.State.PackageName = value
	case "version":
		session.State.Version = value
	case "dependencies":
		for _, token := range splitList(value) {
			id, version, versioned := strings.Cut(token, ":")
			if !session.State.HasDependency(id) {
				session.State.ToggleDependency(id)
			}
			if versioned {
				session.State.SetDependencyVersion(id, version)
			}
		}
	case "boilerplateCode":
		for _, id := range splitList(value) {
			if !session.State.HasBoilerplate(id) {
				session.State.ToggleBoilerplate(id)
			}
		}
	default:
		return fmt.Errorf("unknown --set key %q", key)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
