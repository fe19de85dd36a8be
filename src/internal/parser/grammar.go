package parser

import (
	"strings"

	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
)

type stepKind int

const (
	stepKeyword stepKind = iota
	stepField
)

type field int

const (
	fieldAmount field = iota
	fieldCurrency
	fieldDebitAccount
	fieldCreditAccount
)

type step struct {
	kind    stepKind
	keyword string
	field   field
}

func keyword(k string) step { return step{kind: stepKeyword, keyword: k} }
func capture(f field) step  { return step{kind: stepField, field: f} }

type grammar struct {
	txType  domain.TransactionType
	leading string
	steps   []step
}

// Grammars are tried in order; the first that matches wins.
var grammars = []grammar{
	{
		txType:  domain.TransactionTypeDebit,
		leading: "DEBIT",
		steps: []step{
			capture(fieldAmount),
			capture(fieldCurrency),
			keyword("FROM"),
			keyword("ACCOUNT"),
			capture(fieldDebitAccount),
			keyword("FOR"),
			keyword("CREDIT"),
			keyword("TO"),
			keyword("ACCOUNT"),
			capture(fieldCreditAccount),
		},
	},
	{
		txType:  domain.TransactionTypeCredit,
		leading: "CREDIT",
		steps: []step{
			capture(fieldAmount),
			capture(fieldCurrency),
			keyword("TO"),
			keyword("ACCOUNT"),
			capture(fieldCreditAccount),
			keyword("FOR"),
			keyword("DEBIT"),
			keyword("FROM"),
			keyword("ACCOUNT"),
			capture(fieldDebitAccount),
		},
	},
}

const executeByKeyword = "ON"

// Parse normalizes raw and recognises it as a DEBIT or CREDIT instruction.
// It returns false when neither grammar matches.
func Parse(raw string) (domain.ParsedInstruction, bool) {
	text := Normalize(raw)
	if text == "" {
		return domain.ParsedInstruction{}, false
	}

	for _, g := range grammars {
		if parsed, ok := g.parse(text); ok {
			return parsed, true
		}
	}

	return domain.ParsedInstruction{}, false
}

// parse walks the step table. Keyword steps scan forward and discard any
// text between the previous field and the keyword.
func (g grammar) parse(text string) (domain.ParsedInstruction, bool) {
	if FindKeyword(text, g.leading, 0) != 0 {
		return domain.ParsedInstruction{}, false
	}

	parsed := domain.ParsedInstruction{Type: g.txType}
	pos := len(g.leading)

	for _, s := range g.steps {
		switch s.kind {
		case stepKeyword:
			idx := FindKeyword(text, s.keyword, pos)
			if idx < 0 {
				return domain.ParsedInstruction{}, false
			}
			pos = idx + len(s.keyword)
		case stepField:
			word, next := NextWord(text, pos)
			if word == "" {
				return domain.ParsedInstruction{}, false
			}
			assign(&parsed, s.field, word)
			pos = next
		}
	}

	if strings.TrimSpace(text[pos:]) == "" {
		return parsed, true
	}

	// A dangling ON with no date leaves ExecuteBy unset.
	if idx := FindKeyword(text, executeByKeyword, pos); idx >= 0 {
		date, _ := NextWord(text, idx+len(executeByKeyword))
		parsed.ExecuteBy = date
	}

	return parsed, true
}

func assign(parsed *domain.ParsedInstruction, f field, value string) {
	switch f {
	case fieldAmount:
		parsed.Amount = value
	case fieldCurrency:
		parsed.Currency = value
	case fieldDebitAccount:
		parsed.DebitAccountID = value
	case fieldCreditAccount:
		parsed.CreditAccountID = value
	}
}
