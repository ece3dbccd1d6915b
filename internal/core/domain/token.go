package domain

import "strings"

// TokenSeparator joins a poll id and an option into a vote-button token.
// Poll ids must never contain it (Create enforces this); option text may,
// which is why decoding splits on the first occurrence only.
const TokenSeparator = "<id:option>"

// EncodeToken builds the opaque token carried by a vote button.
func EncodeToken(pollID, option string) string {
	return pollID + TokenSeparator + option
}

// DecodeToken splits a button token back into its poll id and option.
// Returns ErrMalformedToken when the separator is absent.
func DecodeToken(token string) (pollID, option string, err error) {
	before, after, found := strings.Cut(token, TokenSeparator)
	if !found {
		return "", "", ErrMalformedToken
	}
	return before, after, nil
}
