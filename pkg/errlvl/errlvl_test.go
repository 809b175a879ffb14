package errlvl

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	type args struct {
		err   error
		level Lvl
	}
	tests := []struct {
		name      string
		args      args
		wantLevel ErrorLevel
	}{
		{
			name: "wrap error with level",
			args: args{
				err:   errors.New("test"),
				level: INFO,
			},
			wantLevel: ErrInfo,
		},
		{
			name: "wrap with unknown level falls back to error",
			args: args{
				err:   errors.New("test"),
				level: Lvl(42),
			},
			wantLevel: ErrError,
		},
		{
			name: "keep existing level",
			args: args{
				err:   fmt.Errorf("%w %w", ErrWarn, errors.New("test")),
				level: FATAL,
			},
			wantLevel: ErrWarn,
		},
		{
			name: "wrap joined errors",
			args: args{
				err:   errors.Join(errors.New("test1"), errors.New("test2")),
				level: WARN,
			},
			wantLevel: ErrWarn,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.args.err, tt.args.level)
			if !errors.Is(err, tt.wantLevel) {
				t.Errorf("Wrap() wrong error level = %v, want %v", err, tt.wantLevel)
			}
			if !errors.Is(err, tt.args.err) {
				t.Errorf("Wrap() original error not wrapped = %v, want %v", err, tt.args.err)
			}
		})
	}
}

func Test_hasLevel(t *testing.T) {
	type args struct {
		err error
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "error with info level",
			args: args{
				err: fmt.Errorf("%w %w", ErrInfo, errors.New("test")),
			},
			want: true,
		},
		{
			name: "error with warn level",
			args: args{
				err: fmt.Errorf("%w %w", ErrWarn, errors.New("test")),
			},
			want: true,
		},
		{
			name: "error with error level",
			args: args{
				err: fmt.Errorf("%w %w", ErrError, errors.New("test")),
			},
			want: true,
		},
		{
			name: "error with debug level",
			args: args{
				err: fmt.Errorf("%w %w", ErrDebug, errors.New("test")),
			},
			want: true,
		},
		{
			name: "error with fatal level",
			args: args{
				err: fmt.Errorf("%w %w", ErrFatal, errors.New("test")),
			},
			want: true,
		},
		{
			name: "error without level",
			args: args{
				err: errors.New("test"),
			},
			want: false,
		},
		{
			name: "typed error with own level",
			args: args{
				err: fmt.Errorf("outer: %w", leveled{lvl: INFO}),
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasLevel(tt.args.err); got != tt.want {
				t.Errorf("hasLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

type leveled struct {
	lvl Lvl
}

func (l leveled) Error() string { return "leveled" }
func (l leveled) Level() Lvl    { return l.lvl }

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Lvl
	}{
		{name: "nil", err: nil, want: DEBUG},
		{name: "plain error", err: errors.New("plain"), want: ERROR},
		{name: "warn", err: Wrap(errors.New("retry me"), WARN), want: WARN},
		{name: "info wrapped twice", err: fmt.Errorf("outer: %w", Wrap(errors.New("x"), INFO)), want: INFO},
		{name: "fatal joined with info", err: errors.Join(Wrap(errors.New("a"), INFO), Wrap(errors.New("b"), FATAL)), want: FATAL},
		{name: "typed error", err: fmt.Errorf("outer: %w", leveled{lvl: WARN}), want: WARN},
		{name: "sentinel wins over typed error", err: fmt.Errorf("%w %w", ErrFatal, leveled{lvl: WARN}), want: FATAL},
		{name: "wrap keeps typed level", err: Wrap(leveled{lvl: INFO}, FATAL), want: INFO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := From(tt.err); got != tt.want {
				t.Errorf("From() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLvl_String(t *testing.T) {
	if got := WARN.String(); got != "WARN" {
		t.Errorf("String() = %v, want WARN", got)
	}
	if got := Lvl(0).String(); got != "UNKNOWN" {
		t.Errorf("String() = %v, want UNKNOWN", got)
	}
}
