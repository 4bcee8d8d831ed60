package parser

import (
	"errors"
	"strconv"

	"github.com/mint-lang/mint/internal/ast"
	"github.com/mint-lang/mint/internal/diagnostics"
	"github.com/mint-lang/mint/internal/lexer"
	"github.com/mint-lang/mint/internal/lexer/token"
)

type Parser struct {
	cursor    *cursor
	collector *diagnostics.Collector
}

func New(collector *diagnostics.Collector) *Parser {
	parser := new(Parser)
	parser.cursor = nil
	parser.collector = collector
	return parser
}

func (p *Parser) ParseFileAsProgram(path string) (*ast.Program, error) {
	lex, err := lexer.NewFromFilePath(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(lex.Tokenize())
}

func (p *Parser) ParseSource(src []byte) (*ast.Program, error) {
	return p.Parse(lexer.New(src).Tokenize())
}

// Parse builds a program out of the whole token array. The first error
// aborts the parse, there is no recovery.
//
// NOTE: at the top level a token that starts no statement ends the program
// silently, everything after it is dropped. Inside a function body the same
// token is an error.
func (p *Parser) Parse(tokens []*token.Token) (*ast.Program, error) {
	p.cursor = newCursor(tokens)

	var statements []ast.Stmt
	for !p.cursor.isOutOfBound() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			break
		}
		statements = append(statements, stmt)
	}

	return ast.NewProgram(statements), nil
}

// parseStmt returns a nil statement when the next token starts no statement
func (p *Parser) parseStmt() (ast.Stmt, error) {
	tok := p.cursor.peek()
	switch tok.Kind {
	case token.FN:
		fnDecl, err := p.parseFnDecl()
		if err != nil {
			return nil, err
		}
		return fnDecl, nil
	case token.RETURN:
		ret, err := p.parseReturnStmt()
		if err != nil {
			return nil, err
		}
		return ret, nil
	default:
		return nil, nil
	}
}

func (p *Parser) parseFnDecl() (*ast.FnDecl, error) {
	fnDecl := new(ast.FnDecl)

	p.cursor.skip() // fn

	name, err := p.expectId("function name")
	if err != nil {
		return nil, err
	}
	fnDecl.Name = name

	params, err := p.parseFunctionParams()
	if err != nil {
		return nil, err
	}
	fnDecl.Params = params

	if p.cursor.nextIs(token.ARROW) {
		p.cursor.skip() // ->
		retType, err := p.expectId("return type")
		if err != nil {
			return nil, err
		}
		fnDecl.RetType = retType
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	fnDecl.Body = body

	return fnDecl, nil
}

func (p *Parser) parseFunctionParams() ([]*ast.Param, error) {
	if err := p.expectSymbol('('); err != nil {
		return nil, err
	}

	var params []*ast.Param
	if !p.cursor.nextIsSymbol(')') {
		for {
			param := new(ast.Param)

			name, err := p.expectId("parameter name")
			if err != nil {
				return nil, err
			}
			param.Name = name

			if p.cursor.nextIsSymbol(':') {
				p.cursor.skip() // :
				ty, err := p.expectId("parameter type")
				if err != nil {
					return nil, err
				}
				param.Type = ty
			}

			params = append(params, param)

			if !p.cursor.nextIsSymbol(',') {
				break
			}
			p.cursor.skip() // ,
		}
	}

	if err := p.expectSymbol(')'); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseBody() ([]ast.Stmt, error) {
	if err := p.expectSymbol('{'); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for !p.cursor.nextIsSymbol('}') {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			tok := p.cursor.peek()
			return nil, p.report(tok.Span, "unexpected token in function body: %s", tok.Name())
		}
		body = append(body, stmt)
	}

	if err := p.expectSymbol('}'); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	p.cursor.skip() // return

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	semicolon := p.cursor.peek()
	if semicolon.Kind != token.SEMICOLON {
		return nil, p.report(semicolon.Span, "expected ';' after return value but found %s", semicolon.Name())
	}
	p.cursor.skip() // ;

	return &ast.ReturnStmt{Value: value}, nil
}

// expression := primary ( '+' primary )*
func (p *Parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.cursor.nextIsSymbol('+') {
		p.cursor.skip() // +
		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Left: lhs, Op: ast.OP_ADD, Right: rhs}
	}

	return lhs, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cursor.peek()
	switch tok.Kind {
	case token.NUMBER_LITERAL:
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, p.report(tok.Span, "invalid number literal '%s'", tok.Lexeme)
		}
		p.cursor.skip()
		return &ast.NumberLit{Value: value}, nil
	case token.STRING_LITERAL:
		p.cursor.skip()
		return &ast.StringLit{Value: tok.Lexeme}, nil
	case token.ID:
		p.cursor.skip()
		return &ast.IdExpr{Name: tok.Lexeme}, nil
	default:
		return nil, p.report(tok.Span, "unexpected token in expression: %s", tok.Name())
	}
}

func (p *Parser) expectId(role string) (string, error) {
	tok := p.cursor.peek()
	if tok.Kind != token.ID {
		return "", p.report(tok.Span, "expected %s but found %s", role, tok.Name())
	}
	p.cursor.skip()
	return tok.Lexeme, nil
}

func (p *Parser) expectSymbol(sym rune) error {
	tok := p.cursor.peek()
	if !tok.IsSymbol(sym) {
		return p.report(tok.Span, "expected symbol '%c' but found %s", sym, tok.Name())
	}
	p.cursor.skip()
	return nil
}

func (p *Parser) report(span token.Span, format string, args ...any) error {
	diag := diagnostics.NewAt(diagnostics.PARSE_ERROR, span, format, args...)
	if p.collector != nil {
		p.collector.ReportAndSave(diag)
	}
	return diag
}

// IsIncomplete reports whether err is a parse error raised at the end of the
// input, meaning more source could still make it parse. Only the synthesized
// EOF token has an empty span.
func IsIncomplete(err error) bool {
	var diag *diagnostics.Diag
	if !errors.As(err, &diag) {
		return false
	}
	return diag.Kind == diagnostics.PARSE_ERROR && diag.Span.Len() == 0
}
