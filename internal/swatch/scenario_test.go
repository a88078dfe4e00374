package swatch_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/on-the-ground/memo_ive_go/internal/swatch"
	"github.com/on-the-ground/memo_ive_go/observe"
	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/on-the-ground/memo_ive_go/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario(t *testing.T, name string) swatch.Scenario {
	t.Helper()
	for _, s := range swatch.Scenarios() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no scenario %q", name)
	return swatch.Scenario{}
}

func TestScenarioA_AlternationRendersEveryCall(t *testing.T) {
	var out bytes.Buffer
	res, err := swatch.Run(scenario(t, "A"), &out)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Invocations)
	assert.Equal(t, []string{
		"Swatch render: red",
		"Swatch render: blue",
		"Swatch render: red",
		"Swatch render: blue",
	}, res.Outputs)
	assert.Equal(t, 4, strings.Count(out.String(), "Swatch render:"))
	assert.True(t, res.OK())
}

func TestScenarioB_RepetitionRendersOncePerRun(t *testing.T) {
	var out bytes.Buffer
	res, err := swatch.Run(scenario(t, "B"), &out)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Invocations)
	assert.Equal(t, "Swatch render: red\nSwatch render: blue\n", out.String())
	assert.Equal(t, []pure.Stats{{Hits: 2, Misses: 2}}, res.Stats)
	assert.True(t, res.OK())
}

func TestScenarioC_KeyedRendersOncePerColor(t *testing.T) {
	for _, backend := range []store.Backend{store.BackendMap, store.BackendMemDB} {
		t.Run(string(backend), func(t *testing.T) {
			res, err := swatch.Run(scenario(t, "C"), nil, pure.WithBackend(backend))
			require.NoError(t, err)

			assert.Equal(t, 2, res.Invocations)
			assert.Equal(t, []string{
				"Swatch render: red",
				"Swatch render: blue",
				"Swatch render: red",
				"Swatch render: blue",
			}, res.Outputs)
			assert.True(t, res.OK())
		})
	}
}

func TestScenarioIsolation(t *testing.T) {
	rec := observe.NewRecorder(16)
	res, err := swatch.Run(scenario(t, "isolation"), nil, pure.WithObserver(rec))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Invocations)
	require.Len(t, res.Stats, 2)
	for _, s := range res.Stats {
		assert.Equal(t, pure.Stats{Hits: 1, Misses: 1}, s)
	}
	assert.Len(t, rec.Memoizers(), 2)
}

func TestScenarioIsolation_NamedInstancesStayApart(t *testing.T) {
	rec := observe.NewRecorder(16)
	_, err := swatch.Run(scenario(t, "isolation"), nil, pure.WithName("swatch"), pure.WithObserver(rec))
	require.NoError(t, err)

	assert.Equal(t, []string{"swatch/0", "swatch/1"}, rec.Memoizers())
	for _, id := range rec.Memoizers() {
		assert.Equal(t, 1, rec.CountFor(id, pure.EventMiss), id)
		assert.Equal(t, 1, rec.CountFor(id, pure.EventHit), id)
	}
}

func TestRun_SingleInstanceKeepsName(t *testing.T) {
	rec := observe.NewRecorder(16)
	_, err := swatch.Run(scenario(t, "B"), nil, pure.WithName("swatch"), pure.WithObserver(rec))
	require.NoError(t, err)
	assert.Equal(t, []string{"swatch"}, rec.Memoizers())
}

func TestRun_FailureStopsAndReports(t *testing.T) {
	s := swatch.Scenario{
		Name:  "blank",
		Kind:  pure.KindKeyed,
		Steps: swatch.Sequence("red", " ", "blue"),
	}
	res, err := swatch.Run(s, nil)
	assert.ErrorIs(t, err, swatch.ErrNoColor)
	assert.Equal(t, []string{"Swatch render: red"}, res.Outputs)
	assert.Equal(t, 2, res.Invocations)
}

func TestRun_NegativeInstance(t *testing.T) {
	_, err := swatch.Run(swatch.Scenario{Name: "bad", Steps: []swatch.Step{{Instance: -1, Color: "red"}}}, nil)
	assert.Error(t, err)
}

func TestExpectedInvocations(t *testing.T) {
	tests := []struct {
		kind   pure.Kind
		colors []string
		want   int
	}{
		{pure.KindSingleSlot, []string{"red", "blue", "red", "blue"}, 4},
		{pure.KindSingleSlot, []string{"red", "red", "blue", "blue"}, 2},
		{pure.KindKeyed, []string{"red", "blue", "red", "blue"}, 2},
		{pure.KindKeyed, nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, swatch.ExpectedInvocations(tt.kind, tt.colors), "%s %v", tt.kind, tt.colors)
	}

	// every predefined single-memoizer scenario agrees with the prediction
	for _, s := range swatch.Scenarios() {
		if s.Name == "isolation" {
			continue
		}
		colors := make([]string, len(s.Steps))
		for i, st := range s.Steps {
			colors[i] = st.Color
		}
		assert.Equal(t, s.WantInvocations, swatch.ExpectedInvocations(s.Kind, colors), s.Name)
	}
}

func TestRenderer(t *testing.T) {
	var out bytes.Buffer
	r := swatch.NewRenderer(&out)

	v, err := r.Render("red")
	require.NoError(t, err)
	assert.Equal(t, "Swatch render: red", v)

	_, err = r.Render("")
	assert.ErrorIs(t, err, swatch.ErrNoColor)
	assert.Equal(t, 2, r.Calls())
	assert.Equal(t, "Swatch render: red\n", out.String())
}
