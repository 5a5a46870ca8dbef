package query

import (
	"fmt"
	"strings"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/listquery"
)

// MentionField is the field a bare @name filter is recorded under.
const MentionField = "@"

// SortField is the reserved field name that selects the sort order.
const SortField = "sort"

type Filter struct {
	Field string
	Value string
}

func (f Filter) String() string {
	if f.Field == MentionField {
		return "@" + quote(f.Value)
	}
	return f.Field + ":" + quote(f.Value)
}

type SortKey struct {
	Field     string
	Direction listquery.Direction
}

type ParsedQuery struct {
	Filters []Filter
	Sort    *SortKey
	Text    []string
}

// SearchTerm joins the free-text words of the query.
func (q *ParsedQuery) SearchTerm() string {
	return strings.Join(q.Text, " ")
}

func (q *ParsedQuery) IsEmpty() bool {
	return len(q.Filters) == 0 && q.Sort == nil && len(q.Text) == 0
}

type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Message)
}

type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseQuery parses input of the form
//
//	status:pending tag:bug,ui @alice sort:-due "free text"
//
// Unquoted values may list alternatives separated by commas.
func ParseQuery(input string) (*ParsedQuery, error) {
	query := &ParsedQuery{}
	if strings.TrimSpace(input) == "" {
		return query, nil
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	if err := NewParser(tokens).parse(query); err != nil {
		return nil, err
	}
	return query, nil
}

func (p *Parser) parse(query *ParsedQuery) error {
	for p.current().Type != TokenEOF {
		token := p.current()

		switch token.Type {
		case TokenAt:
			p.advance()
			value, err := p.value("name after @")
			if err != nil {
				return err
			}
			query.Filters = append(query.Filters, Filter{Field: MentionField, Value: value})

		case TokenWord:
			if p.next().Type != TokenColon {
				query.Text = append(query.Text, token.Value)
				p.advance()
				continue
			}
			if err := p.parseField(query); err != nil {
				return err
			}

		case TokenQuoted:
			if token.Value != "" {
				query.Text = append(query.Text, token.Value)
			}
			p.advance()

		case TokenColon:
			return &ParseError{Message: "expected field name before :", Pos: token.Pos}

		default:
			return &ParseError{Message: fmt.Sprintf("unexpected %s", token), Pos: token.Pos}
		}
	}
	return nil
}

func (p *Parser) parseField(query *ParsedQuery) error {
	field := strings.ToLower(p.current().Value)
	p.advance() // field
	p.advance() // :

	quoted := p.current().Type == TokenQuoted
	value, err := p.value("value after " + field + ":")
	if err != nil {
		return err
	}

	if field == SortField {
		key, err := ParseSortKey(value)
		if err != nil {
			return &ParseError{Message: err.Error(), Pos: p.pos}
		}
		query.Sort = key
		return nil
	}

	if quoted {
		query.Filters = append(query.Filters, Filter{Field: field, Value: value})
		return nil
	}
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			query.Filters = append(query.Filters, Filter{Field: field, Value: v})
		}
	}
	return nil
}

func (p *Parser) value(what string) (string, error) {
	token := p.current()
	if token.Type != TokenWord && token.Type != TokenQuoted {
		return "", &ParseError{Message: "expected " + what, Pos: token.Pos}
	}
	p.advance()
	return token.Value, nil
}

// ParseSortKey reads field, -field, +field or field.dir.
func ParseSortKey(value string) (*SortKey, error) {
	key := &SortKey{Direction: listquery.Ascending}

	switch {
	case strings.HasPrefix(value, "-"):
		key.Direction = listquery.Descending
		value = value[1:]
	case strings.HasPrefix(value, "+"):
		value = value[1:]
	}

	// sort:age.desc is accepted as well as sort:-age
	if field, dir, ok := strings.Cut(value, "."); ok {
		d, err := listquery.ParseDirection(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalid, err)
		}
		key.Direction = d
		value = field
	}

	key.Field = strings.ToLower(strings.TrimSpace(value))
	if key.Field == "" {
		return nil, fmt.Errorf("sort field cannot be empty: %w", domain.ErrInvalid)
	}
	return key, nil
}

func (p *Parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Type: TokenEOF}
}

func (p *Parser) next() Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return Token{Type: TokenEOF}
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t:,\"'@") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
