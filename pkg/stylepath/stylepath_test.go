// SPDX-License-Identifier: MPL-2.0

package stylepath_test

import (
	"testing"

	"github.com/stylereg/stylereg/pkg/stylepath"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "parent segment collapses", in: "widgets/../framework/x.less", want: "framework/x.less"},
		{name: "plain path is identity", in: "widgets/common/button.less", want: "widgets/common/button.less"},
		{name: "leading slash stripped", in: "/widgets/generic/list.generic.less", want: "widgets/generic/list.generic.less"},
		{name: "current dir segments removed", in: "widgets/./base/./icons.less", want: "widgets/base/icons.less"},
		{name: "double parent", in: "widgets/generic/../../mixins.less", want: "mixins.less"},
		{name: "theme relative base", in: "widgets/generic/../base/icons.less", want: "widgets/base/icons.less"},
		{name: "common ui", in: "widgets/common/../ui.less", want: "widgets/ui.less"},
		{name: "backslashes", in: `widgets\base\..\ui.less`, want: "widgets/ui.less"},
		{name: "empty", in: "", want: ""},
		{name: "root only", in: "/", want: ""},
		{name: "above root is clamped", in: "../x.less", want: "x.less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := stylepath.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	const in = "exporter/generic/../../widgets/base/../common/widget.less"
	first := stylepath.Normalize(in)
	for range 10 {
		if got := stylepath.Normalize(in); got != first {
			t.Fatalf("Normalize(%q) changed between calls: %q vs %q", in, first, got)
		}
	}
	if !stylepath.IsNormalized(first) {
		t.Errorf("IsNormalized(%q) = false, want true", first)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	if got := stylepath.Join("widgets", "base", "../../mixins.less"); got != "mixins.less" {
		t.Errorf("Join() = %q, want %q", got, "mixins.less")
	}
	if got := stylepath.Join("framework", "common", "framework.less"); got != "framework/common/framework.less" {
		t.Errorf("Join() = %q, want %q", got, "framework/common/framework.less")
	}
}

func TestIconsPath(t *testing.T) {
	t.Parallel()

	if got := stylepath.IconsPath("src/less"); got != "src/icons" {
		t.Errorf("IconsPath() = %q, want %q", got, "src/icons")
	}
	if got := stylepath.IconsPath("/abs/less/"); got != "/abs/icons" {
		t.Errorf("IconsPath() = %q, want %q", got, "/abs/icons")
	}
}
