package hiring

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
	"github.com/google/go-cmp/cmp"
)

// runLines feeds lines to a fresh interpreter and returns the response texts.
func runLines(t *testing.T, opts []Option, lines ...string) ([]string, *service) {
	t.Helper()
	svc, ok := NewService(opts...).(*service)
	if !ok {
		t.Fatalf("NewService() did not return a *service")
	}
	var out []string
	for _, line := range lines {
		out = append(out, svc.ProcessLine(line).Text)
	}
	return out, svc
}

func TestService_ProcessLine_CommandNotFound(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "unknown keyword keeps newline", line: "HIRE x@y.com\n", want: "Command not found for HIRE x@y.com\n"},
		{name: "lowercase keyword", line: "define A B", want: "Command not found for define A B"},
		{name: "blank line", line: "\n", want: "Command not found for \n"},
		{name: "empty line", line: "", want: "Command not found for "},
		{name: "keyword not first", line: "A DEFINE B", want: "Command not found for A DEFINE B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewService().ProcessLine(tt.line)
			if resp.Text != tt.want {
				t.Errorf("ProcessLine(%q) = %q, want %q", tt.line, resp.Text, tt.want)
			}
			if resp.Kind != response.NotFound {
				t.Errorf("ProcessLine(%q) kind = %v, want %v", tt.line, resp.Kind, response.NotFound)
			}
		})
	}
}

func TestService_Define(t *testing.T) {
	t.Run("no stages is a shape error", func(t *testing.T) {
		got, svc := runLines(t, nil, "DEFINE\n")
		want := "Error: Command DEFINE is invalid. "
		if got[0] != want {
			t.Errorf("got %q, want %q", got[0], want)
		}
		if len(svc.Stages()) != 0 {
			t.Errorf("Stages() = %v, want empty", svc.Stages())
		}
	})

	t.Run("repeated DEFINE accumulates", func(t *testing.T) {
		got, svc := runLines(t, nil, "DEFINE A B\n", "DEFINE  C\tA\n")
		if diff := cmp.Diff([]string{"DEFINE A B", "DEFINE C A"}, got); diff != "" {
			t.Errorf("responses mismatch (-want +got):\n%s", diff)
		}
		if !reflect.DeepEqual(svc.Stages(), []string{"A", "B", "C", "A"}) {
			t.Errorf("Stages() = %v", svc.Stages())
		}
	})

	t.Run("seeded stages come first", func(t *testing.T) {
		_, svc := runLines(t, []Option{WithStages("Screen")}, "DEFINE Onsite")
		if !reflect.DeepEqual(svc.Stages(), []string{"Screen", "Onsite"}) {
			t.Errorf("Stages() = %v", svc.Stages())
		}
	})
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		want      []string
		wantCount int
	}{
		{
			name:      "valid email",
			lines:     []string{"CREATE x@y.com\n"},
			want:      []string{"CREATE x@y.com"},
			wantCount: 1,
		},
		{
			name:      "duplicate",
			lines:     []string{"CREATE x@y.com", "CREATE x@y.com"},
			want:      []string{"CREATE x@y.com", "Duplicate applicant"},
			wantCount: 1,
		},
		{
			name:  "malformed email",
			lines: []string{"CREATE not-an-email"},
			want:  []string{"Error: Command CREATE not-an-email is invalid. Email is invalid."},
		},
		{
			name:  "no dotted domain",
			lines: []string{"CREATE a@localhost"},
			want:  []string{"Error: Command CREATE a@localhost is invalid. Email is invalid."},
		},
		{
			name:  "missing argument",
			lines: []string{"CREATE"},
			want:  []string{"Error: Command CREATE is invalid. "},
		},
		{
			name:  "too many arguments",
			lines: []string{"CREATE a@b.com c@d.com"},
			want:  []string{"Error: Command CREATE a@b.com c@d.com is invalid. "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, svc := runLines(t, nil, tt.lines...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("responses mismatch (-want +got):\n%s", diff)
			}
			if len(svc.applicants) != tt.wantCount {
				t.Errorf("registry size = %d, want %d", len(svc.applicants), tt.wantCount)
			}
		})
	}
}

func TestService_Advance(t *testing.T) {
	setup := []string{"DEFINE A B C", "CREATE x@y.com"}

	tests := []struct {
		name      string
		lines     []string
		want      string
		wantStage int
	}{
		{name: "next stage", lines: []string{"ADVANCE x@y.com"}, want: "ADVANCE x@y.com", wantStage: 1},
		{name: "named stage", lines: []string{"ADVANCE x@y.com C"}, want: "ADVANCE x@y.com C", wantStage: 2},
		{name: "named earlier stage moves back", lines: []string{"ADVANCE x@y.com C", "ADVANCE x@y.com A"}, want: "ADVANCE x@y.com A", wantStage: 0},
		{name: "named current stage", lines: []string{"ADVANCE x@y.com A"}, want: "Already in A", wantStage: 0},
		{name: "past last stage", lines: []string{"ADVANCE x@y.com C", "ADVANCE x@y.com"}, want: "Already in C", wantStage: 2},
		{name: "unknown stage", lines: []string{"ADVANCE x@y.com Z"}, want: "Error: Command ADVANCE x@y.com Z is invalid. Stage does not exist in pipeline.", wantStage: 0},
		{name: "unknown email", lines: []string{"ADVANCE nobody@y.com"}, want: "Error: Command ADVANCE nobody@y.com is invalid. Email does not exist in database.", wantStage: 0},
		{name: "no arguments", lines: []string{"ADVANCE"}, want: "Error: Command ADVANCE is invalid. ", wantStage: 0},
		{name: "too many arguments", lines: []string{"ADVANCE x@y.com A B"}, want: "Error: Command ADVANCE x@y.com A B is invalid. ", wantStage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, svc := runLines(t, nil, append(setup, tt.lines...)...)
			if last := got[len(got)-1]; last != tt.want {
				t.Errorf("last response = %q, want %q", last, tt.want)
			}
			idx, ok := svc.applicants["x@y.com"].Stage()
			if !ok || idx != tt.wantStage {
				t.Errorf("stage = %d (in pipeline %v), want %d", idx, ok, tt.wantStage)
			}
		})
	}
}

func TestService_Advance_NoStages(t *testing.T) {
	got, _ := runLines(t, nil, "CREATE x@y.com", "ADVANCE x@y.com")
	if got[1] != "Already in " {
		t.Errorf("ADVANCE with no stages = %q, want %q", got[1], "Already in ")
	}
}

func TestService_Decide(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "hire at last stage", lines: []string{"ADVANCE x@y.com", "DECIDE x@y.com 1"}, want: "Hired x@y.com"},
		{name: "hire before last stage", lines: []string{"DECIDE x@y.com 1"}, want: "Failed to decide for x@y.com"},
		{name: "reject at first stage", lines: []string{"DECIDE x@y.com 0"}, want: "Rejected x@y.com"},
		{name: "reject at last stage", lines: []string{"ADVANCE x@y.com", "DECIDE x@y.com 0"}, want: "Rejected x@y.com"},
		{name: "unknown code", lines: []string{"ADVANCE x@y.com", "DECIDE x@y.com 2"}, want: "Failed to decide for x@y.com"},
		{name: "unknown email", lines: []string{"DECIDE a@b.com 0"}, want: "Error: Command DECIDE a@b.com 0 is invalid. Email does not exist in database."},
		{name: "missing code", lines: []string{"DECIDE x@y.com"}, want: "Error: Command DECIDE x@y.com is invalid. "},
		{name: "already hired", lines: []string{"ADVANCE x@y.com", "DECIDE x@y.com 1", "DECIDE x@y.com 0"}, want: "Error: Command DECIDE x@y.com 0 is invalid. Applicant has already been decided."},
		{name: "advance after reject", lines: []string{"DECIDE x@y.com 0", "ADVANCE x@y.com"}, want: "Error: Command ADVANCE x@y.com is invalid. Applicant has already been decided."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := append([]string{"DEFINE A B", "CREATE x@y.com"}, tt.lines...)
			got, _ := runLines(t, nil, lines...)
			if last := got[len(got)-1]; last != tt.want {
				t.Errorf("last response = %q, want %q", last, tt.want)
			}
		})
	}
}

func TestService_Stats(t *testing.T) {
	t.Run("counts per stage", func(t *testing.T) {
		got, _ := runLines(t, nil,
			"DEFINE ManualReview BackgroundCheck",
			"CREATE x@y.com",
			"ADVANCE x@y.com",
			"STATS",
		)
		want := "ManualReview 0 BackgroundCheck 1 Hired 0 Rejected 0"
		if got[3] != want {
			t.Errorf("STATS = %q, want %q", got[3], want)
		}
	})

	t.Run("decided applicants leave stage counts", func(t *testing.T) {
		_, svc := runLines(t, nil,
			"DEFINE A B",
			"CREATE a@x.com", "CREATE b@x.com", "CREATE c@x.com",
			"DECIDE a@x.com 0",
			"ADVANCE b@x.com", "DECIDE b@x.com 1",
		)
		want := pipeline.Stats{
			Stages:   []pipeline.StageCount{{Name: "A", Count: 1}, {Name: "B", Count: 0}},
			Hired:    1,
			Rejected: 1,
		}
		if diff := cmp.Diff(want, svc.Stats()); diff != "" {
			t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no stages", func(t *testing.T) {
		got, _ := runLines(t, nil, "CREATE x@y.com", "STATS")
		if got[1] != "Hired 0 Rejected 0" {
			t.Errorf("STATS = %q", got[1])
		}
	})

	t.Run("arguments are a shape error", func(t *testing.T) {
		got, _ := runLines(t, nil, "STATS now")
		if got[0] != "Error: Command STATS now is invalid. " {
			t.Errorf("STATS now = %q", got[0])
		}
	})
}

func TestService_EndToEnd(t *testing.T) {
	got, _ := runLines(t, nil,
		"DEFINE A B\n",
		"CREATE x@y.com\n",
		"ADVANCE x@y.com\n",
		"DECIDE x@y.com 1\n",
		"STATS\n",
	)
	want := []string{
		"DEFINE A B",
		"CREATE x@y.com",
		"ADVANCE x@y.com",
		"Hired x@y.com",
		"A 0 B 0 Hired 1 Rejected 0",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestService_ResponseKinds(t *testing.T) {
	svc := NewService()
	tests := []struct {
		line string
		want response.Kind
	}{
		{"DEFINE A B", response.Echo},
		{"DEFINE", response.ShapeError},
		{"CREATE bad", response.ValidationError},
		{"CREATE x@y.com", response.Echo},
		{"CREATE x@y.com", response.Info},
		{"ADVANCE z@y.com", response.ReferenceError},
		{"STATS", response.Info},
		{"NOPE", response.NotFound},
	}
	for _, tt := range tests {
		if got := svc.ProcessLine(tt.line).Kind; got != tt.want {
			t.Errorf("ProcessLine(%q).Kind = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestService_StagesReturnsCopy(t *testing.T) {
	svc := NewService(WithStages("A", "B"))
	stages := svc.Stages()
	stages[0] = "mutated"
	if svc.Stages()[0] != "A" {
		t.Errorf("Stages() exposed internal slice")
	}
}
