package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/veclint/veclint/pkg/lint"
	"github.com/veclint/veclint/pkg/svg"
)

// TestYAMLConfiguredLint runs a rules block exactly as it would arrive
// from a config file, checking that the YAML scalar types map onto the
// requirement shapes.
func TestYAMLConfiguredLint(t *testing.T) {
	var cfg struct {
		Rules map[string]any `yaml:"rules"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`
rules:
  attr:
    rule::selector: "svg"
    viewBox: true
    role: [img, progressbar]
    width: 24
  elm:
    svg > title: true
    script: false
    circle: [0, 3]
`), &cfg))

	doc, err := svg.Parse([]byte(`<svg viewBox="0 0 24 24" role="img" width="24">
  <title>icon</title>
  <circle r="1"/>
</svg>`))
	require.NoError(t, err)

	p := lint.NewProcess(doc, lint.Instances(cfg.Rules))
	assert.Equal(t, lint.StateSuccess, p.Wait())
	assert.Empty(t, p.Diagnostics())
}

func TestYAMLConfiguredLintFailures(t *testing.T) {
	var cfg struct {
		Rules map[string]any `yaml:"rules"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`
rules:
  attr:
    rule::selector: "svg"
    viewBox: true
  elm:
    script: false
`), &cfg))

	doc, err := svg.Parse([]byte(`<svg><script>alert(1)</script></svg>`))
	require.NoError(t, err)

	p := lint.NewProcess(doc, lint.Instances(cfg.Rules))
	assert.Equal(t, lint.StateError, p.Wait())

	msgs := messages(p.Diagnostics())
	assert.Contains(t, msgs, "Attribute 'viewBox' is required on <svg>")
	assert.Contains(t, msgs, "Element <script> matching 'script' is disallowed")
}
