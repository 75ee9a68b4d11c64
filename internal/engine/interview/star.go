package interview

import (
	"regexp"
	"strings"
)

// STARFlags records which parts of the Situation/Task/Action/Result structure
// an answer appears to cover. The flags are independent.
type STARFlags struct {
	Situation bool `json:"situation"`
	Task      bool `json:"task"`
	Action    bool `json:"action"`
	Result    bool `json:"result"`
}

var (
	situationRe = regexp.MustCompile(`\b(situation|context|background|when i was|while i was|at my (last|previous|current) (job|role|company|team)|once|there was a time|during)\b`)
	taskRe      = regexp.MustCompile(`\b(task|goal|objective|responsib\w*|challenge|needed to|had to|was asked to|my job was|assigned)\b`)
	actionRe    = regexp.MustCompile(`\b(i (led|built|created|designed|implemented|developed|organized|organised|decided|took|wrote|started|set up|worked)|led|solved|implemented|developed|designed|built|initiated|coordinated|resolved|automated|refactored|negotiated)\b`)
	resultRe    = regexp.MustCompile(`\b(result\w*|outcome|improv\w*|increas\w*|reduc\w*|sav(ed|ing|ings)|achiev\w*|deliver\w*|grew|cut|impact|success\w*)\b|\d+(\.\d+)?\s?%`)
)

// CheckSTAR tests the answer for Situation, Task, Action and Result cues.
func CheckSTAR(answer string) STARFlags {
	lower := strings.ToLower(answer)
	return STARFlags{
		Situation: situationRe.MatchString(lower),
		Task:      taskRe.MatchString(lower),
		Action:    actionRe.MatchString(lower),
		Result:    resultRe.MatchString(lower),
	}
}

// Score returns the fraction of STAR components present (0, 0.25, ... 1).
func (f STARFlags) Score() float64 {
	n := 0
	for _, ok := range []bool{f.Situation, f.Task, f.Action, f.Result} {
		if ok {
			n++
		}
	}
	return float64(n) / 4
}
