package protocol

// Tokenize splits a command payload into at most max tokens. The payload is
// split on single space characters; once max-1 splits have been made, the
// remainder is kept verbatim (embedded spaces included) as the final token.
// Free-text arguments such as device names therefore survive intact when
// they land in the last position.
//
// An empty payload yields a single empty token.
func Tokenize(payload string, max int) []string {
	if max < 1 {
		max = 1
	}
	tokens := make([]string, 0, max)
	for len(tokens) < max-1 {
		sep := -1
		for i := 0; i < len(payload); i++ {
			if payload[i] == ' ' {
				sep = i
				break
			}
		}
		if sep < 0 {
			break
		}
		tokens = append(tokens, payload[:sep])
		payload = payload[sep+1:]
	}
	return append(tokens, payload)
}
