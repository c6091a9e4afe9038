package analysis

import "fmt"

// ParseNumberError reports a numeric token that could not be decoded for
// the field the parser was in.
type ParseNumberError struct {
	State ParsingState
	Token string
}

func (e *ParseNumberError) Error() string {
	return fmt.Sprintf("could not parse info number for state %s from %q", e.State, e.Token)
}

// InvalidKeyError reports an unrecognized top-level info keyword while
// strict mode is active.
type InvalidKeyError struct {
	Token string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid info key %q", e.Token)
}

// InvalidScoreError reports a token following "score" that is neither
// "cp", "mate" nor a bound keyword.
type InvalidScoreError struct {
	Token string
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("invalid score specifier %q", e.Token)
}
