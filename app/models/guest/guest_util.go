package guest

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Name length bounds applied after trimming, in runes.
const (
	MinNameLength = 2
	MaxNameLength = 100
)

// ImportError records one rejected name and the reason.
type ImportError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ImportResult is the three-way outcome of a bulk import: names accepted for
// creation, names skipped as duplicates, and names rejected with a reason.
type ImportResult struct {
	Accepted   []string      `json:"accepted"`
	Duplicates []string      `json:"duplicates"`
	Errors     []ImportError `json:"errors"`
}

// PrepareImport validates a batch of raw names against the already-persisted
// guest names (lowercased). Per name: whitespace is trimmed; names that end
// up empty are dropped silently; names shorter than 2 or longer than 100
// runes are errors; duplicate detection is case-insensitive against both the
// database and earlier entries of the same batch.
func PrepareImport(rawNames []string, existingLower map[string]bool) ImportResult {
	result := ImportResult{
		Accepted:   []string{},
		Duplicates: []string{},
		Errors:     []ImportError{},
	}

	seen := make(map[string]bool, len(rawNames))

	for _, raw := range rawNames {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		length := utf8.RuneCountInString(name)
		if length < MinNameLength {
			result.Errors = append(result.Errors, ImportError{Name: name, Error: "nome muito curto (mínimo 2 caracteres)"})
			continue
		}
		if length > MaxNameLength {
			result.Errors = append(result.Errors, ImportError{Name: name, Error: "nome muito longo (máximo 100 caracteres)"})
			continue
		}

		lower := strings.ToLower(name)
		if existingLower[lower] || seen[lower] {
			result.Duplicates = append(result.Duplicates, name)
			continue
		}

		seen[lower] = true
		result.Accepted = append(result.Accepted, name)
	}

	return result
}

// SplitNames breaks free text pasted into the import box into candidate
// names, one per line.
func SplitNames(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// ErrCodeExhausted is returned when code generation keeps colliding. At
// wedding scale this is unreachable, but it must be a detectable failure
// rather than an endless loop.
var ErrCodeExhausted = errors.New("não foi possível gerar um código de confirmação único")

const codeMaxAttempts = 10

// GenerateConfirmationCode draws a 6-digit code uniformly from
// 100000-999999, re-drawing on collision up to 10 times. The exists callback
// checks the persisted codes.
func GenerateConfirmationCode(exists func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < codeMaxAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(900000))
		if err != nil {
			return "", err
		}
		code := strconv.FormatInt(n.Int64()+100000, 10)

		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

// LookupKind tells how a confirmation lookup should be performed.
type LookupKind string

const (
	LookupToken LookupKind = "token"
	LookupCode  LookupKind = "code"
)

// CodePattern is the shape of a confirmation code. Checked before touching
// the database: a malformed code is a client error, not a miss.
var CodePattern = regexp.MustCompile(`^\d{6}$`)

// ErrUnrecognizedInput means the pasted text is neither a code, a token nor
// a confirmation link.
var ErrUnrecognizedInput = errors.New("não foi possível identificar o código ou link de confirmação")

// ParseConfirmationInput resolves whatever an admin pasted into a lookup:
// a bare 6-digit code, a bare token, or a full URL carrying a token/code
// query parameter or a /confirmacao/<token> path segment.
func ParseConfirmationInput(raw string) (LookupKind, string, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return "", "", ErrUnrecognizedInput
	}

	if CodePattern.MatchString(input) {
		return LookupCode, input, nil
	}

	if strings.Contains(input, "://") || strings.HasPrefix(input, "www.") {
		return parseConfirmationURL(input)
	}

	if _, err := uuid.Parse(input); err == nil {
		return LookupToken, input, nil
	}

	return "", "", ErrUnrecognizedInput
}

func parseConfirmationURL(input string) (LookupKind, string, error) {
	if strings.HasPrefix(input, "www.") {
		input = "https://" + input
	}

	u, err := url.Parse(input)
	if err != nil {
		return "", "", ErrUnrecognizedInput
	}

	if token := u.Query().Get("token"); token != "" {
		return validatedToken(token)
	}
	if code := u.Query().Get("code"); code != "" {
		if !CodePattern.MatchString(code) {
			return "", "", ErrUnrecognizedInput
		}
		return LookupCode, code, nil
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, segment := range segments {
		if segment == "confirmacao" && i+1 < len(segments) && segments[i+1] != "" {
			return validatedToken(segments[i+1])
		}
	}

	return "", "", ErrUnrecognizedInput
}

// validatedToken applies the same shape check URL-extracted tokens get as
// bare ones; a garbage segment is unparseable input, not a lookup miss.
func validatedToken(token string) (LookupKind, string, error) {
	if _, err := uuid.Parse(token); err != nil {
		return "", "", ErrUnrecognizedInput
	}
	return LookupToken, token, nil
}
