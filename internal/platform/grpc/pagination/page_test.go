package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 50, Max: 200}

	cases := []struct {
		name  string
		value int32
		want  int
	}{
		{name: "zero falls back to default", value: 0, want: 50},
		{name: "negative falls back to default", value: -5, want: 50},
		{name: "in range passes through", value: 25, want: 25},
		{name: "oversized is capped", value: 1000, want: 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampPageSize(tc.value, cfg); got != tc.want {
				t.Fatalf("ClampPageSize(%d) = %d, want %d", tc.value, got, tc.want)
			}
		})
	}
}

func TestClampPageSizeWithoutConfig(t *testing.T) {
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize(0) = %d, want 1", got)
	}
}
