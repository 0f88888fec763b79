// Package pix validates PIX keys and builds static EMV "copia e cola"
// payloads (BR Code) for them.
//
// A static BR Code carries no transaction on the provider side; it encodes
// the key, the merchant display data and an optional amount, terminated by a
// CRC-16/CCITT checksum. Scanning apps validate the CRC before offering the
// payment.
package pix

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// KeyType enumerates the PIX key types accepted by the rail.
type KeyType string

const (
	KeyCPF    KeyType = "CPF"
	KeyCNPJ   KeyType = "CNPJ"
	KeyEmail  KeyType = "EMAIL"
	KeyPhone  KeyType = "TELEFONE"
	KeyRandom KeyType = "ALEATORIA"
)

// KeyTypes lists every valid type, in display order.
var KeyTypes = []KeyType{KeyCPF, KeyCNPJ, KeyEmail, KeyPhone, KeyRandom}

// IsValidType reports whether t is a known key type.
func IsValidType(t string) bool {
	for _, kt := range KeyTypes {
		if string(kt) == t {
			return true
		}
	}
	return false
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)
	digitsOnly   = regexp.MustCompile(`\D`)
)

// ValidateKey checks a key value against its declared type. CPF and CNPJ go
// through the full check-digit algorithm; the other types are format checks.
func ValidateKey(keyType KeyType, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("chave PIX não pode ser vazia")
	}

	switch keyType {
	case KeyCPF:
		if !validCPF(digitsOnly.ReplaceAllString(value, "")) {
			return errors.New("CPF inválido")
		}
	case KeyCNPJ:
		if !validCNPJ(digitsOnly.ReplaceAllString(value, "")) {
			return errors.New("CNPJ inválido")
		}
	case KeyEmail:
		if !emailPattern.MatchString(value) {
			return errors.New("e-mail inválido")
		}
	case KeyPhone:
		if !phonePattern.MatchString(value) {
			return errors.New("telefone inválido, use o formato +5511999999999")
		}
	case KeyRandom:
		if _, err := uuid.Parse(value); err != nil {
			return errors.New("chave aleatória inválida")
		}
	default:
		return fmt.Errorf("tipo de chave desconhecido: %s", keyType)
	}
	return nil
}

// validCPF runs the CPF check-digit algorithm over an 11-digit string.
func validCPF(cpf string) bool {
	if len(cpf) != 11 || allSame(cpf) {
		return false
	}

	for _, pos := range []int{9, 10} {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(cpf[i]-'0') * (pos + 1 - i)
		}
		digit := (sum * 10) % 11 % 10
		if digit != int(cpf[pos]-'0') {
			return false
		}
	}
	return true
}

// validCNPJ runs the CNPJ check-digit algorithm over a 14-digit string.
func validCNPJ(cnpj string) bool {
	if len(cnpj) != 14 || allSame(cnpj) {
		return false
	}

	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, pos := range []int{12, 13} {
		sum := 0
		offset := len(weights) - pos
		for i := 0; i < pos; i++ {
			sum += int(cnpj[i]-'0') * weights[offset+i]
		}
		digit := sum % 11
		if digit < 2 {
			digit = 0
		} else {
			digit = 11 - digit
		}
		if digit != int(cnpj[pos]-'0') {
			return false
		}
	}
	return true
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// Payload describes one static BR Code.
type Payload struct {
	Key          string
	MerchantName string  // max 25 chars, truncated
	MerchantCity string  // max 15 chars, truncated
	Amount       float64 // optional; zero omits the amount field
	TxID         string  // optional; defaults to "***"
}

// BRCode assembles the copia-e-cola string for the payload.
func BRCode(p Payload) (string, error) {
	if strings.TrimSpace(p.Key) == "" {
		return "", errors.New("pix: payload sem chave")
	}

	name := normalizeEMV(p.MerchantName, 25)
	city := normalizeEMV(p.MerchantCity, 15)
	if name == "" || city == "" {
		return "", errors.New("pix: nome e cidade do recebedor são obrigatórios")
	}

	txid := p.TxID
	if txid == "" {
		txid = "***"
	}
	if len(txid) > 25 {
		return "", errors.New("pix: txid não pode exceder 25 caracteres")
	}

	var b strings.Builder
	b.WriteString(emv("00", "01")) // payload format indicator

	// Merchant account information: GUI + key.
	account := emv("00", "br.gov.bcb.pix") + emv("01", p.Key)
	b.WriteString(emv("26", account))

	b.WriteString(emv("52", "0000")) // merchant category code, unused
	b.WriteString(emv("53", "986"))  // currency: BRL
	if p.Amount > 0 {
		b.WriteString(emv("54", fmt.Sprintf("%.2f", p.Amount)))
	}
	b.WriteString(emv("58", "BR"))
	b.WriteString(emv("59", name))
	b.WriteString(emv("60", city))
	b.WriteString(emv("62", emv("05", txid))) // additional data: txid

	// The CRC field covers everything up to and including its own ID+length.
	b.WriteString("6304")
	payload := b.String()
	return payload + fmt.Sprintf("%04X", crc16(payload)), nil
}

// emv renders one id-length-value field.
func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// normalizeEMV strips characters the rail rejects and truncates.
func normalizeEMV(s string, max int) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if r >= 32 && r < 127 {
			return r
		}
		return -1
	}, removeDiacritics(s))
	if len(s) > max {
		s = s[:max]
	}
	return s
}

// removeDiacritics folds the accented characters common in Brazilian names
// into ASCII; anything else non-ASCII is dropped later.
func removeDiacritics(s string) string {
	replacer := strings.NewReplacer(
		"á", "a", "à", "a", "ã", "a", "â", "a", "ä", "a",
		"é", "e", "ê", "e", "è", "e", "ë", "e",
		"í", "i", "î", "i", "ì", "i", "ï", "i",
		"ó", "o", "õ", "o", "ô", "o", "ò", "o", "ö", "o",
		"ú", "u", "û", "u", "ù", "u", "ü", "u",
		"ç", "c", "ñ", "n",
		"Á", "A", "À", "A", "Ã", "A", "Â", "A", "Ä", "A",
		"É", "E", "Ê", "E", "È", "E", "Ë", "E",
		"Í", "I", "Î", "I", "Ì", "I", "Ï", "I",
		"Ó", "O", "Õ", "O", "Ô", "O", "Ò", "O", "Ö", "O",
		"Ú", "U", "Û", "U", "Ù", "U", "Ü", "U",
		"Ç", "C", "Ñ", "N",
	)
	return replacer.Replace(s)
}

// crc16 implements CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) as required
// by the BR Code spec.
func crc16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// CheckCRC reports whether a copia-e-cola string carries a valid checksum.
func CheckCRC(code string) bool {
	if len(code) < 8 {
		return false
	}
	body, tail := code[:len(code)-4], code[len(code)-4:]
	if !strings.HasSuffix(body, "6304") {
		return false
	}
	return fmt.Sprintf("%04X", crc16(body)) == strings.ToUpper(tail)
}
