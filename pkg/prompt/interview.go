package prompt

import (
	"context"
	"fmt"

	"github.com/shubham-dpworld/initializr-ui/pkg/catalog"
	"github.com/shubham-dpworld/initializr-ui/pkg/composer"
	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
)

// Interview walks a composer session through every selection screen: axis
// choices, project metadata, the dependency browser, per-dependency versions,
// and the template browser. It mutates session state one answer at a time and
// never composes the request itself.
type Interview struct {
	driver Driver
}

// NewInterview builds an Interview on top of the given driver.
func NewInterview(driver Driver) *Interview {
	return &Interview{driver: driver}
}

// Run executes the full interview against the session.
func (i *Interview) Run(ctx context.Context, session *composer.Session) error {
	if err := i.askAxes(ctx, session); err != nil {
		return err
	}
	if err := i.askMetadata(ctx, session); err != nil {
		return err
	}
	if err := i.browseDependencies(ctx, session); err != nil {
		return err
	}
	if err := i.askVersions(ctx, session); err != nil {
		return err
	}
	if session.Schema.HasBoilerplate() {
		if err := i.browseBoilerplate(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interview) askAxes(ctx context.Context, session *composer.Session) error {
	axes := []struct {
		message string
		axis    metadata.Axis
		target  *string
	}{
		{"Project type", session.Schema.Type, &session.State.Type},
		{"Language", session.Schema.Language, &session.State.Language},
		{"Packaging", session.Schema.Packaging, &session.State.Packaging},
		{"Boot version", session.Schema.BootVersion, &session.State.BootVersion},
		{"Java version", session.Schema.JavaVersion, &session.State.JavaVersion},
	}

	for _, entry := range axes {
		if len(entry.axis.Values) == 0 {
			continue
		}

		options := make([]string, len(entry.axis.Values))
		defaultIndex := 0
		for idx, value := range entry.axis.Values {
			options[idx] = axisLabel(value)
			if value.ID == *entry.target {
				defaultIndex = idx
			}
		}

		chosen, err := i.driver.Select(ctx, SelectConfig{
			Message:      entry.message,
			Options:      options,
			DefaultIndex: defaultIndex,
		})
		if err != nil {
			return err
		}
		if chosen >= 0 && chosen < len(entry.axis.Values) {
			*entry.target = entry.axis.Values[chosen].ID
		}
	}
	return nil
}

func (i *Interview) askMetadata(ctx context.Context, session *composer.Session) error {
	fields := []struct {
		message string
		target  *string
	}{
		{"Group", &session.State.GroupID},
		{"Artifact", &session.State.ArtifactID},
		{"Name", &session.State.Name},
		{"Description", &session.State.Description},
		{"Package name", &session.State.PackageName},
		{"Version", &session.State.Version},
	}

	for _, field := range fields {
		answer, err := i.driver.Input(ctx, InputConfig{
			Message: field.message,
			Default: *field.target,
		})
		if err != nil {
			return err
		}
		*field.target = answer
	}
	return nil
}

// browseDependencies mirrors the modal flow of the browsing UI: search,
// toggle within the filtered view, repeat until done. Items hidden by the
// current filter keep their selection.
func (i *Interview) browseDependencies(ctx context.Context, session *composer.Session) error {
	if len(session.Schema.Dependencies.Values) == 0 {
		return nil
	}

	browse, err := i.driver.Confirm(ctx, ConfirmConfig{
		Message: "Add dependencies?",
		Default: true,
	})
	if err != nil || !browse {
		return err
	}

	for {
		query, err := i.driver.Input(ctx, InputConfig{
			Message: "Search dependencies (empty lists everything)",
		})
		if err != nil {
			return err
		}

		groups := catalog.FilterDependencies(session.Schema.Dependencies.Values, query)
		if len(groups) == 0 {
			if err := i.driver.Info(ctx, fmt.Sprintf("No dependencies found matching %q", query)); err != nil {
				return err
			}
		} else {
			var (
				options []string
				ids     []string
			)
			var defaults []int
			for _, group := range groups {
				for _, dep := range group.Values {
					if session.State.HasDependency(dep.ID) {
						defaults = append(defaults, len(options))
					}
					options = append(options, dependencyLabel(group.Name, dep))
					ids = append(ids, dep.ID)
				}
			}

			picked, err := i.driver.MultiSelect(ctx, SelectConfig{
				Message:  "Select dependencies",
				Options:  options,
				Defaults: defaults,
				PageSize: 15,
			})
			if err != nil {
				return err
			}

			applyToggles(ids, picked, session.State.HasDependency, session.State.ToggleDependency)
		}

		again, err := i.driver.Confirm(ctx, ConfirmConfig{
			Message: "Search again?",
		})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (i *Interview) askVersions(ctx context.Context, session *composer.Session) error {
	for _, id := range append([]string(nil), session.State.Dependencies...) {
		dep := session.Schema.FindDependency(id)
		if dep == nil || !dep.Versioned() {
			continue
		}

		resolved := session.ResolveVersion(id)
		options := make([]string, len(dep.Versions))
		defaultIndex := 0
		for idx, version := range dep.Versions {
			options[idx] = versionLabel(version)
			if version.ID == resolved.ID {
				defaultIndex = idx
			}
		}

		chosen, err := i.driver.Select(ctx, SelectConfig{
			Message:      fmt.Sprintf("Version for %s", displayName(dep.Name, dep.ID)),
			Options:      options,
			DefaultIndex: defaultIndex,
		})
		if err != nil {
			return err
		}
		if chosen >= 0 && chosen < len(dep.Versions) {
			session.State.SetDependencyVersion(id, dep.Versions[chosen].ID)
		}
	}
	return nil
}

func (i *Interview) browseBoilerplate(ctx context.Context, session *composer.Session) error {
	browse, err := i.driver.Confirm(ctx, ConfirmConfig{
		Message: "Add API integration templates?",
	})
	if err != nil || !browse {
		return err
	}

	for {
		query, err := i.driver.Input(ctx, InputConfig{
			Message: "Search templates (empty lists everything)",
		})
		if err != nil {
			return err
		}

		groups := catalog.GroupBoilerplate(session.Schema.BoilerplateCodeOptions, query)
		if len(groups) == 0 {
			if err := i.driver.Info(ctx, fmt.Sprintf("No templates found matching %q", query)); err != nil {
				return err
			}
		} else {
			var (
				options []string
				ids     []string
			)
			var defaults []int
			for _, group := range groups {
				for _, code := range group.Values {
					if session.State.HasBoilerplate(code.ID) {
						defaults = append(defaults, len(options))
					}
					options = append(options, boilerplateLabel(group.Label, code))
					ids = append(ids, code.ID)
				}
			}

			picked, err := i.driver.MultiSelect(ctx, SelectConfig{
				Message:  "Select templates",
				Options:  options,
				Defaults: defaults,
				PageSize: 15,
			})
			if err != nil {
				return err
			}

			applyToggles(ids, picked, session.State.HasBoilerplate, session.State.ToggleBoilerplate)
		}

		again, err := i.driver.Confirm(ctx, ConfirmConfig{
			Message: "Search again?",
		})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// applyToggles reconciles a multi-select answer against the current set,
// touching only the ids that were visible in the filtered view.
func applyToggles(visible []string, picked []int, has func(string) bool, toggle func(string)) {
	chosen := make(map[string]struct{}, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(visible) {
			chosen[visible[idx]] = struct{}{}
		}
	}
	for _, id := range visible {
		_, want := chosen[id]
		if want != has(id) {
			toggle(id)
		}
	}
}

func axisLabel(value metadata.AxisValue) string {
	return displayName(value.Name, value.ID)
}

func versionLabel(version metadata.DependencyVersion) string {
	return displayName(version.Name, version.ID)
}

func dependencyLabel(group string, dep metadata.Dependency) string {
	label := fmt.Sprintf("%s / %s [%s]", group, displayName(dep.Name, dep.ID), dep.ID)
	if dep.Description != "" {
		label += " - " + dep.Description
	}
	return label
}

func boilerplateLabel(group string, code metadata.BoilerplateOption) string {
	label := fmt.Sprintf("%s / %s [%s]", group, displayName(code.Name, code.ID), code.ID)
	if code.Description != "" {
		label += " - " + code.Description
	}
	return label
}

func displayName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
