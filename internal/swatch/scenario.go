package swatch

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/on-the-ground/memo_ive_go/pure"
)

// Step is one call of a scenario, made on memoizer number Instance.
type Step struct {
	Instance int
	Color    string
}

type Scenario struct {
	Name            string
	Description     string
	Kind            pure.Kind
	Steps           []Step
	WantInvocations int
}

// Result is what a scenario run observed.
type Result struct {
	Scenario    Scenario
	Outputs     []string
	Invocations int
	Stats       []pure.Stats
}

func (r Result) OK() bool {
	return r.Invocations == r.Scenario.WantInvocations
}

// Sequence builds steps on a single memoizer.
func Sequence(colors ...string) []Step {
	steps := make([]Step, len(colors))
	for i, c := range colors {
		steps[i] = Step{Color: c}
	}
	return steps
}

// ExpectedInvocations predicts how often the renderer runs when colors go
// through one memoizer of the given kind, assuming every render succeeds.
func ExpectedInvocations(kind pure.Kind, colors []string) int {
	n := 0
	switch kind {
	case pure.KindSingleSlot:
		for i, c := range colors {
			if i == 0 || colors[i-1] != c {
				n++
			}
		}
	case pure.KindKeyed:
		seen := make(map[string]struct{}, len(colors))
		for _, c := range colors {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				n++
			}
		}
	}
	return n
}

// Scenarios returns the demo scenarios.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:            "A",
			Description:     "single slot, alternating colors: every call renders",
			Kind:            pure.KindSingleSlot,
			Steps:           Sequence("red", "blue", "red", "blue"),
			WantInvocations: 4,
		},
		{
			Name:            "B",
			Description:     "single slot, repeated colors: one render per run",
			Kind:            pure.KindSingleSlot,
			Steps:           Sequence("red", "red", "blue", "blue"),
			WantInvocations: 2,
		},
		{
			Name:            "C",
			Description:     "keyed table, alternating colors: one render per color",
			Kind:            pure.KindKeyed,
			Steps:           Sequence("red", "blue", "red", "blue"),
			WantInvocations: 2,
		},
		{
			Name:        "isolation",
			Description: "two single slots over one renderer: neither sees the other's entry",
			Kind:        pure.KindSingleSlot,
			Steps: []Step{
				{0, "red"}, {1, "red"},
				{0, "red"}, {1, "red"},
			},
			WantInvocations: 2,
		},
	}
}

// Run replays s against fresh memoizers wrapping one renderer writing to out.
// With several instances, a name given through pure.WithName gets the
// instance number appended ("name/0", "name/1").
// A render failure stops the run and is returned with the partial result.
func Run(s Scenario, out io.Writer, opts ...pure.Option) (Result, error) {
	renderer := NewRenderer(out)

	instances := 0
	for _, step := range s.Steps {
		if step.Instance < 0 {
			return Result{Scenario: s}, fmt.Errorf("scenario %s: negative instance %d", s.Name, step.Instance)
		}
		instances = max(instances, step.Instance+1)
	}

	memos := make([]pure.Memoizer[string, string], instances)
	for i := range memos {
		instOpts := opts
		if instances > 1 {
			instOpts = append(slices.Clip(opts), pure.WithIDSuffix(strconv.Itoa(i)))
		}
		memos[i] = pure.New(s.Kind, renderer.Render, instOpts...)
	}

	res := Result{Scenario: s, Outputs: make([]string, 0, len(s.Steps))}
	for _, step := range s.Steps {
		v, err := memos[step.Instance].Call(step.Color)
		if err != nil {
			res.Invocations = renderer.Calls()
			res.Stats = statsOf(memos)
			return res, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		res.Outputs = append(res.Outputs, v)
	}
	res.Invocations = renderer.Calls()
	res.Stats = statsOf(memos)
	return res, nil
}

func statsOf(memos []pure.Memoizer[string, string]) []pure.Stats {
	stats := make([]pure.Stats, 0, len(memos))
	for _, m := range memos {
		if s, ok := m.(interface{ Stats() pure.Stats }); ok {
			stats = append(stats, s.Stats())
		}
	}
	return stats
}
