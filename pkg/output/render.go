// Package output renders a 3x3 inertia tensor in one of a set of registered
// output formats.
package output

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Renderer turns an inertia tensor into its final textual form
type Renderer func(tensor mat.Symmetric) string

var renderers = map[string]Renderer{
	"text": renderText,
	"urdf": renderURDF,
	"xml":  renderURDF,
}

// Register adds or replaces a named output format
func Register(name string, renderer Renderer) {
	renderers[strings.ToLower(name)] = renderer
}

// Lookup returns the renderer for a format name, or an error listing the
// supported formats.
func Lookup(name string) (Renderer, error) {
	renderer, ok := renderers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (supported: %s)", name, strings.Join(Formats(), ", "))
	}
	return renderer, nil
}

// Render formats the tensor with the named renderer
func Render(tensor mat.Symmetric, format string) (string, error) {
	renderer, err := Lookup(format)
	if err != nil {
		return "", err
	}
	return renderer(tensor), nil
}

// Formats returns the registered format names, sorted
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func renderText(tensor mat.Symmetric) string {
	return fmt.Sprintf("%v", mat.Formatted(tensor, mat.Squeeze()))
}

// renderURDF emits the six independent tensor components as a URDF-style
// <inertia> fragment, symmetric entries collapsed per the schema.
func renderURDF(tensor mat.Symmetric) string {
	return fmt.Sprintf(
		`<inertia ixx="%.8e" ixy="%.8e" ixz="%.8e" iyy="%.8e" iyz="%.8e" izz="%.8e"/>`,
		tensor.At(0, 0), tensor.At(0, 1), tensor.At(0, 2),
		tensor.At(1, 1), tensor.At(1, 2), tensor.At(2, 2))
}
