package normalize

import "testing"

func TestInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  2003-09-25  ", "2003-09-25"},
		{"Sep\t25   2003", "Sep 25 2003"},
		{"２００３-０９-２５", "2003-09-25"},
		{"July 10, ’96", "July 10, '96"},
		{"2003–09–25", "2003-09-25"},
		{"25 Sep 2003", "25 Sep 2003"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Input(tt.in); got != tt.want {
			t.Errorf("Input(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFields(t *testing.T) {
	got := Fields("On  Sep 25 2003")
	want := []string{"On", "Sep", "25", "2003"}
	if len(got) != len(want) {
		t.Fatalf("Fields = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
