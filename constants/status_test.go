package constants

import "testing"

// Every stored job status must be exactly one of: a state a job can still
// leave (listed in NonTerminalJobStatuses) or a terminal state. A status
// outside both sets would be storable but unreachable by any transition.
func TestJobStatusMachineCoversEveryStoredValue(t *testing.T) {
	nonTerminal := map[JobStatus]bool{}
	for _, s := range NonTerminalJobStatuses {
		if s.IsTerminal() {
			t.Errorf("%s listed as non-terminal but IsTerminal() is true", s)
		}
		nonTerminal[s] = true
	}

	terminal := 0
	for _, raw := range JobStatuses {
		s := JobStatus(raw)
		switch {
		case s.IsTerminal():
			terminal++
		case !nonTerminal[s]:
			t.Errorf("stored status %s is neither terminal nor in NonTerminalJobStatuses", s)
		}
	}
	if got, want := len(JobStatuses), len(nonTerminal)+terminal; got != want {
		t.Errorf("JobStatuses has %d values, machine accounts for %d", got, want)
	}
}

func TestSessionStatusTerminality(t *testing.T) {
	wantTerminal := map[SessionStatus]bool{
		SessionStatusCompleted: true,
		SessionStatusFailed:    true,
		SessionStatusExpired:   true,
		SessionStatusCancelled: true,
	}
	for _, raw := range SessionStatuses {
		s := SessionStatus(raw)
		if s.IsTerminal() != wantTerminal[s] {
			t.Errorf("%s: IsTerminal() = %v, want %v", s, s.IsTerminal(), wantTerminal[s])
		}
	}
}
