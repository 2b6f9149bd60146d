package normalize

import "fmt"

// DecodeError reports that a raw wire payload failed schema validation or
// could not be unmarshalled. Kind names the expected record kind
// ("contact" or "folder").
type DecodeError struct {
	Kind string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s record: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
