package observe_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/observe"
	"github.com/on-the-ground/memo_ive_go/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(color string) (string, error) {
	return "Swatch render: " + color, nil
}

func TestRecorder_CountsPerMemoizer(t *testing.T) {
	rec := observe.NewRecorder(16)
	single := pure.New(pure.KindSingleSlot, render, pure.WithName("single"), pure.WithObserver(rec))
	keyed := pure.New(pure.KindKeyed, render, pure.WithName("keyed"), pure.WithObserver(rec))

	for _, c := range []string{"red", "blue", "red", "blue"} {
		_, err := single.Call(c)
		require.NoError(t, err)
		_, err = keyed.Call(c)
		require.NoError(t, err)
	}

	assert.Equal(t, 4, rec.CountFor("single", pure.EventMiss))
	assert.Equal(t, 0, rec.CountFor("single", pure.EventHit))
	assert.Equal(t, 2, rec.CountFor("keyed", pure.EventMiss))
	assert.Equal(t, 2, rec.CountFor("keyed", pure.EventHit))
	assert.Equal(t, 6, rec.Count(pure.EventMiss))
	assert.Equal(t, []string{"single", "keyed"}, rec.Memoizers())
}

func TestRecorder_TrailIsBoundedAndOrdered(t *testing.T) {
	rec := observe.NewRecorder(3)
	memo := pure.NewSingleSlot(render, pure.WithName("slot"), pure.WithObserver(rec))

	for _, c := range []string{"red", "red", "blue", "blue", "green"} {
		_, err := memo.Call(c)
		require.NoError(t, err)
	}

	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, []uint64{3, 4, 5}, []uint64{events[0].Seq, events[1].Seq, events[2].Seq})
	assert.Equal(t, "blue", events[0].Key)
	assert.Equal(t, pure.EventHit, events[1].Event)
	assert.Equal(t, "green", events[2].Key)
	assert.Equal(t, 2, rec.Dropped())

	// counts survive the bound
	assert.Equal(t, 3, rec.Count(pure.EventMiss))
	assert.Equal(t, 2, rec.Count(pure.EventHit))
}

func TestRecorder_Clear(t *testing.T) {
	rec := observe.NewRecorder(2)
	memo := pure.NewKeyed(render, pure.WithObserver(rec))
	_, _ = memo.Call("red")

	rec.Clear()
	assert.Empty(t, rec.Events())
	assert.Equal(t, 0, rec.Count(pure.EventMiss))
	assert.Empty(t, rec.Memoizers())
}
