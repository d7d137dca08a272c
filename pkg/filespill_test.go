package pkg

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type spillRecord struct {
	Name   string
	Line   int
	Killed bool
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file in directory", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		require.Contains(t, spill.Path(), dir)
		require.FileExists(t, spill.Path())
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, "first", val)

		val, err = spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "second", val)

		val, err = spill.Get(3)
		require.Error(t, err)
		require.Equal(t, "", val)
	})

	t.Run("Len returns correct count", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, uint64(0), spill.Len())
		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range iterates all items in order", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		expected := []int{100, 200, 300}
		require.NoError(t, spill.AppendBatch(expected))

		var collected []int
		err = spill.Range(func(_ uint64, item int) error {
			collected = append(collected, item)
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, expected, collected)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop at index 1")
		count := 0
		err = spill.Range(func(index uint64, _ int) error {
			count++
			if index == 1 {
				return stop
			}
			return nil
		})

		require.ErrorIs(t, err, stop)
		require.Equal(t, 2, count)
	})

	t.Run("Range on empty spill calls nothing", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		called := false
		require.NoError(t, spill.Range(func(uint64, int) error {
			called = true
			return nil
		}))
		require.False(t, called)
	})

	t.Run("zero fields do not inherit previous values", func(t *testing.T) {
		spill, err := NewFileSpill[spillRecord](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append(spillRecord{Name: "a", Line: 12, Killed: true}))
		require.NoError(t, spill.Append(spillRecord{Name: "b"}))

		var collected []spillRecord
		require.NoError(t, spill.Range(func(_ uint64, item spillRecord) error {
			collected = append(collected, item)
			return nil
		}))

		require.Equal(t, []spillRecord{{Name: "a", Line: 12, Killed: true}, {Name: "b"}}, collected)
	})

	t.Run("Close removes the file and rejects appends", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())

		_, statErr := os.Stat(spill.Path())
		require.True(t, os.IsNotExist(statErr))
		require.ErrorIs(t, spill.Append(2), ErrSpillClosed)
		require.NoError(t, spill.Close())
	})

	t.Run("concurrent appends are all recorded", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		done := make(chan struct{})
		for w := range 4 {
			go func() {
				defer func() { done <- struct{}{} }()
				for i := range 25 {
					_ = spill.Append(w*100 + i)
				}
			}()
		}

		for range 4 {
			<-done
		}

		require.Equal(t, uint64(100), spill.Len())
	})
}
