package ierrors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmplcore/interpolate/ierrors"
)

func TestUnexpectedValue_Message(t *testing.T) {
	err := &ierrors.UnexpectedValue{Path: "user.userid"}
	assert.Equal(t, "Unexpected value: user.userid", err.Error())
}

func TestInvalidArgumentNumber_Message(t *testing.T) {
	err := &ierrors.InvalidArgumentNumber{
		Where:    ierrors.WhereFormatNumberHelper,
		Expected: "2..3",
		Actual:   5,
	}
	assert.Equal(t, "formatNumberHelper expected 2..3 arguments, got 5", err.Error())
}

func TestInvalidReplaceArguments_Message(t *testing.T) {
	err := &ierrors.InvalidReplaceArguments{Arg1: "jack", Arg2: `"mike`}
	assert.Equal(t, `Invalid replace arguments: jack, "mike`, err.Error())
}

func TestInvalidDate_Message(t *testing.T) {
	err := &ierrors.InvalidDate{Argument: "NOTTATDATE!"}
	assert.Equal(t, "Invalid date: NOTTATDATE!", err.Error())
}

func TestExpectedInteger_Message(t *testing.T) {
	err := &ierrors.ExpectedInteger{Where: ierrors.WhereThreeArgumentHelper}
	assert.Equal(t, "threeArgumentHelper expected integer", err.Error())
}

func TestNumberFormatError_Message(t *testing.T) {
	err := &ierrors.NumberFormatError{Input: "abc"}
	assert.Equal(t, `For input string: "abc"`, err.Error())
}
