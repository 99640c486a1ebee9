package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk_HasValue(t *testing.T) {
	t.Parallel()
	r := Ok[int, string](42)
	assert.True(t, r.HasValue())
	assert.False(t, r.IsError())
	assert.Equal(t, 42, r.MustValue())
}

func TestFail_HoldsError(t *testing.T) {
	t.Parallel()
	r := Fail[int, string]("boom")
	assert.False(t, r.HasValue())
	assert.True(t, r.IsError())
	assert.Equal(t, "boom", r.MustError())
}

func TestZeroValue_IsDefaultSuccess(t *testing.T) {
	t.Parallel()
	var r Result[int, string]
	require.True(t, r.HasValue())
	assert.Equal(t, 0, r.MustValue())
}

func TestFromError(t *testing.T) {
	t.Parallel()
	r := FromError[int](NewError(123))
	require.True(t, r.IsError())
	assert.Equal(t, 123, r.MustError())
	assert.True(t, r.WrappedError().Equal(NewError(123)))
}

func TestValue_PanicsWithMissingValueOnError(t *testing.T) {
	t.Parallel()
	r := Fail[int, int](123)
	defer func() {
		v := recover()
		mv, ok := v.(*MissingValueError[int])
		require.True(t, ok, "expected *MissingValueError[int], got %T", v)
		assert.Equal(t, 123, mv.ErrorValue())
		assert.Equal(t, "result: missing value", mv.Error())
	}()
	_ = r.Value()
	t.Fatal("expected Value to panic")
}

func TestValue_ReturnsPayload(t *testing.T) {
	t.Parallel()
	r := Ok[string, int]("hi")
	assert.Equal(t, "hi", r.Value())
}

func TestMust_PanicsOnMisuse(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "result: MustValue called on an error result", func() {
		_ = Fail[int, string]("e").MustValue()
	})
	assert.PanicsWithValue(t, "result: MustError called on a success result", func() {
		_ = Ok[int, string](1).MustError()
	})
}

func TestGet_CommaOk(t *testing.T) {
	t.Parallel()
	v, ok := Ok[int, string](7).Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = Fail[int, string]("e").Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	e, ok := Fail[int, string]("e").GetError()
	assert.True(t, ok)
	assert.Equal(t, "e", e)

	e, ok = Ok[int, string](7).GetError()
	assert.False(t, ok)
	assert.Zero(t, e)
}

func TestValueOr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, float32(300.0), Fail[float32, int](100).ValueOr(300.0))
	assert.Equal(t, float32(1.5), Ok[float32, int](1.5).ValueOr(300.0))
}

func TestUnpack(t *testing.T) {
	t.Parallel()
	v, err := Ok[int, string](9).Unpack()
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = Fail[int, string]("boom").Unpack()
	require.Error(t, err)
	var mv *MissingValueError[string]
	require.True(t, errors.As(err, &mv))
	assert.Equal(t, "boom", mv.ErrorValue())
}

func TestSetError_ZeroesDeadValueSlot(t *testing.T) {
	t.Parallel()
	x := 5
	r := Ok[*int, string](&x)
	r.SetError("boom")
	assert.Nil(t, r.value, "dead success slot must be zeroed")
	assert.Equal(t, "boom", r.MustError())
}

func TestSet_ZeroesDeadErrorSlot(t *testing.T) {
	t.Parallel()
	e := errors.New("boom")
	r := Fail[int, error](e)
	r.Set(3)
	assert.Nil(t, r.err, "dead error slot must be zeroed")
	assert.Equal(t, 3, r.MustValue())
}

func TestEmplace_ReplacesLivePayload(t *testing.T) {
	t.Parallel()
	r := Ok[int, string](1)
	r.Emplace(2)
	assert.Equal(t, 2, r.MustValue())

	r = Fail[int, string]("e")
	r.Emplace(4)
	require.True(t, r.HasValue())
	assert.Equal(t, 4, r.MustValue())
	assert.Zero(t, r.err)
}

func TestAssign(t *testing.T) {
	t.Parallel()
	r := Ok[int, string](1)
	r.Assign(Fail[int, string]("e"))
	require.True(t, r.IsError())
	assert.Equal(t, "e", r.MustError())
	assert.Zero(t, r.value)
}

func TestSwap(t *testing.T) {
	t.Parallel()
	a := Ok[int, string](1)
	b := Fail[int, string]("e")
	a.Swap(&b)
	require.True(t, a.IsError())
	assert.Equal(t, "e", a.MustError())
	require.True(t, b.HasValue())
	assert.Equal(t, 1, b.MustValue())
}

func TestVoid_Success(t *testing.T) {
	t.Parallel()
	r := OkVoid[string]()
	require.True(t, r.HasValue())
	assert.Equal(t, Void{}, r.Value())
}

func TestVoid_ErrorState(t *testing.T) {
	t.Parallel()
	r := Fail[Void, string]("boom")
	require.True(t, r.IsError())
	defer func() {
		v := recover()
		mv, ok := v.(*MissingValueError[string])
		require.True(t, ok)
		assert.Equal(t, "boom", mv.ErrorValue())
	}()
	_ = r.Value()
	t.Fatal("expected Value to panic")
}

func TestVoid_RejectedAsErrorType(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "result: error type must not be Void", func() {
		_ = NewError(Void{})
	})
	assert.PanicsWithValue(t, "result: error type must not be Void", func() {
		_ = Fail[int, Void](Void{})
	})
}

func TestErrorWrapper_Equal(t *testing.T) {
	t.Parallel()
	assert.True(t, NewError(10).Equal(NewError(10)))
	assert.False(t, NewError(10).Equal(NewError(11)))
	assert.Equal(t, 10, NewError(10).Value())
}
