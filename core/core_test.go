package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration_String(t *testing.T) {
	assert.Equal(t, "Zero", Zero.String())
	assert.Equal(t, "One", One.String())
	assert.Equal(t, "Configuration(7)", Configuration(7).String())
}

func TestConfiguration_Valid(t *testing.T) {
	assert.True(t, Zero.Valid())
	assert.True(t, One.Valid())
	assert.False(t, Configuration(-1).Valid())
	assert.False(t, Configuration(2).Valid())
}

func TestInitials_Order(t *testing.T) {
	assert.Equal(t, []Configuration{Zero, One}, Initials)
}

func TestOutcome_Check(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		n       int
		wantErr string
	}{
		{name: "balanced", outcome: Outcome{Zeros: 5012, Ones: 4988, Agree: 9500}, n: 10000},
		{name: "all agree", outcome: Outcome{Zeros: 10, Ones: 0, Agree: 10}, n: 10},
		{name: "none agree", outcome: Outcome{Zeros: 3, Ones: 7, Agree: 0}, n: 10},
		{name: "short count", outcome: Outcome{Zeros: 3, Ones: 6, Agree: 9}, n: 10, wantErr: "classified 9 of 10"},
		{name: "over count", outcome: Outcome{Zeros: 6, Ones: 6, Agree: 9}, n: 10, wantErr: "classified 12 of 10"},
		{name: "agree above n", outcome: Outcome{Zeros: 5, Ones: 5, Agree: 11}, n: 10, wantErr: "agreement count 11"},
		{name: "negative agree", outcome: Outcome{Zeros: 5, Ones: 5, Agree: -1}, n: 10, wantErr: "agreement count -1"},
		{name: "negative category", outcome: Outcome{Zeros: -1, Ones: 11, Agree: 1}, n: 10, wantErr: "negative category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Check(tt.n)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReport_String(t *testing.T) {
	zero := Report{Configuration: Zero, Outcome: Outcome{Zeros: 5012, Ones: 4988, Agree: 9500}}
	one := Report{Configuration: One, Outcome: Outcome{Zeros: 4990, Ones: 5010, Agree: 9480}}
	small := Report{Configuration: One, Outcome: Outcome{Zeros: 1, Ones: 2, Agree: 3}}

	assert.Equal(t, "Init:Zero 0s=5012 1s=4988 agree=9500", zero.String())
	assert.Equal(t, "Init:One  0s=4990 1s=5010 agree=9480", one.String())
	assert.Equal(t, "Init:One  0s=1    1s=2    agree=3   ", small.String())
}

func TestTrialFunc_Execute(t *testing.T) {
	var gotTrials int
	var gotInitial Configuration

	f := TrialFunc(func(_ context.Context, _ Handle, trials int, initial Configuration) (Outcome, error) {
		gotTrials, gotInitial = trials, initial
		return Outcome{Ones: trials, Agree: trials}, nil
	})

	out, err := f.Execute(context.Background(), nil, 4, One)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Ones: 4, Agree: 4}, out)
	assert.Equal(t, 4, gotTrials)
	assert.Equal(t, One, gotInitial)
}
