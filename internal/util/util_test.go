package util_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/httphdr/internal/util"
)

func TestStringBuilderPool(t *testing.T) {
	t.Parallel()

	sb := util.GetStringBuilder()
	sb.WriteString("abc")
	if got := sb.String(); got != "abc" {
		t.Errorf("sb.String() = %q, want \"abc\"", got)
	}
	util.FreeStringBuilder(sb)

	sb = util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if got := sb.Len(); got != 0 {
		t.Errorf("sb.Len() = %d, want 0", got)
	}
}

func TestMust2(t *testing.T) {
	t.Parallel()

	if got := util.Must2(42, nil); got != 42 {
		t.Errorf("util.Must2(42, nil) = %d, want 42", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("util.Must2(0, err) did not panic")
		}
	}()
	util.Must2(0, errors.New("boom"))
}
