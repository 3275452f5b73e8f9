package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nook-lang/nook/nook"
	"github.com/spf13/cobra"
)

// CompletionItemKind values of the language server protocol.
const (
	completionKindVariable = 6
	completionKindKeyword  = 14
)

type lspInboundMessage struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type lspResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lspOutboundMessage struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      *json.RawMessage  `json:"id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Params  any               `json:"params,omitempty"`
	Result  any               `json:"result,omitempty"`
	Error   *lspResponseError `json:"error,omitempty"`
}

type lspDidOpenParams struct {
	TextDocument struct {
		URI  string `json:"uri"`
		Text string `json:"text"`
	} `json:"textDocument"`
}

type lspDidChangeParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	ContentChanges []struct {
		Text string `json:"text"`
	} `json:"contentChanges"`
}

type lspTextDocumentPositionParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Position struct {
		Line      int `json:"line"`
		Character int `json:"character"`
	} `json:"position"`
}

type lspServer struct {
	reader *bufio.Reader
	writer *bufio.Writer
	engine *nook.Engine
	docs   map[string]string
}

func (c *cli) newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Serve diagnostics, hover and completion over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLSP(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runLSP(in io.Reader, out io.Writer) error {
	server := &lspServer{
		reader: bufio.NewReader(in),
		writer: bufio.NewWriter(out),
		engine: nook.NewEngine(nook.Config{}),
		docs:   make(map[string]string),
	}
	return server.serve()
}

func (s *lspServer) serve() error {
	for {
		payload, err := s.readPayload()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var incoming lspInboundMessage
		if err := json.Unmarshal(payload, &incoming); err != nil {
			continue
		}

		for _, msg := range s.handleMessage(incoming) {
			if err := s.writePayload(msg); err != nil {
				return err
			}
		}

		if incoming.Method == "exit" {
			return nil
		}
	}
}

func (s *lspServer) handleMessage(incoming lspInboundMessage) []lspOutboundMessage {
	switch incoming.Method {
	case "initialize":
		return s.reply(incoming, map[string]any{
			"capabilities": map[string]any{
				"textDocumentSync": 1,
				"hoverProvider":    true,
				"completionProvider": map[string]any{
					"resolveProvider": false,
				},
			},
			"serverInfo": map[string]any{
				"name":    "nook",
				"version": versionString(),
			},
		})
	case "initialized", "exit":
		return nil
	case "shutdown":
		return s.reply(incoming, nil)
	case "textDocument/didOpen":
		var params lspDidOpenParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		s.docs[params.TextDocument.URI] = params.TextDocument.Text
		return []lspOutboundMessage{s.publishDiagnostics(params.TextDocument.URI)}
	case "textDocument/didChange":
		var params lspDidChangeParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil || len(params.ContentChanges) == 0 {
			return nil
		}
		s.docs[params.TextDocument.URI] = params.ContentChanges[len(params.ContentChanges)-1].Text
		return []lspOutboundMessage{s.publishDiagnostics(params.TextDocument.URI)}
	case "textDocument/didClose":
		var params lspDidOpenParams
		if err := json.Unmarshal(incoming.Params, &params); err == nil {
			delete(s.docs, params.TextDocument.URI)
		}
		return nil
	case "textDocument/completion", "textDocument/hover":
		if incoming.ID == nil {
			return nil
		}
		var params lspTextDocumentPositionParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return s.fail(incoming, -32602, "invalid "+strings.TrimPrefix(incoming.Method, "textDocument/")+" params")
		}
		if incoming.Method == "textDocument/completion" {
			return s.reply(incoming, map[string]any{
				"isIncomplete": false,
				"items":        s.completionItems(params.TextDocument.URI),
			})
		}
		return s.reply(incoming, s.hover(params))
	default:
		if incoming.ID == nil {
			return nil
		}
		return s.fail(incoming, -32601, "method not found")
	}
}

func (s *lspServer) reply(incoming lspInboundMessage, result any) []lspOutboundMessage {
	if incoming.ID == nil {
		return nil
	}
	return []lspOutboundMessage{{JSONRPC: "2.0", ID: incoming.ID, Result: result}}
}

func (s *lspServer) fail(incoming lspInboundMessage, code int, message string) []lspOutboundMessage {
	return []lspOutboundMessage{{
		JSONRPC: "2.0",
		ID:      incoming.ID,
		Error:   &lspResponseError{Code: code, Message: message},
	}}
}

func (s *lspServer) publishDiagnostics(uri string) lspOutboundMessage {
	return lspOutboundMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: map[string]any{
			"uri":         uri,
			"diagnostics": diagnosticsForSource(s.engine, s.docs[uri]),
		},
	}
}

func diagnosticsForSource(engine *nook.Engine, source string) []map[string]any {
	program, err := engine.Parse(source)
	if err != nil {
		var nerr *nook.Error
		if errors.As(err, &nerr) {
			return []map[string]any{newDiagnostic(nerr)}
		}
		return []map[string]any{newDiagnostic(&nook.Error{Message: err.Error()})}
	}

	out := make([]map[string]any, 0, len(program.Diagnostics))
	for _, d := range program.Diagnostics {
		out = append(out, newDiagnostic(d))
	}
	return out
}

// newDiagnostic converts 1-based rune positions into the 0-based range the
// client expects, spanning the offending fragment.
func newDiagnostic(e *nook.Error) map[string]any {
	line := max(0, e.Pos.Line-1)
	character := max(0, e.Pos.Column-1)
	width := max(1, utf8.RuneCountInString(e.Fragment))
	return map[string]any{
		"range": map[string]any{
			"start": map[string]any{
				"line":      line,
				"character": character,
			},
			"end": map[string]any{
				"line":      line,
				"character": character + width,
			},
		},
		"severity": 1,
		"source":   "nook",
		"code":     e.Kind.String(),
		"message":  e.Message,
	}
}

// declaredNames maps every variable declared in source to its position.
// Sources that fail to scan declare nothing.
func (s *lspServer) declaredNames(uri string) map[string]nook.Position {
	names := make(map[string]nook.Position)
	program, err := s.engine.Parse(s.docs[uri])
	if err != nil {
		return names
	}
	for _, stmt := range program.Statements {
		if v, ok := stmt.(*nook.VarStmt); ok {
			if _, seen := names[v.Name.Literal]; !seen {
				names[v.Name.Literal] = v.Name.Pos
			}
		}
	}
	return names
}

func (s *lspServer) completionItems(uri string) []map[string]any {
	items := make([]map[string]any, 0)
	for _, keyword := range nook.Keywords() {
		items = append(items, map[string]any{
			"label":  keyword,
			"kind":   completionKindKeyword,
			"detail": "keyword",
		})
	}

	names := s.declaredNames(uri)
	labels := make([]string, 0, len(names))
	for name := range names {
		labels = append(labels, name)
	}
	sort.Strings(labels)
	for _, name := range labels {
		items = append(items, map[string]any{
			"label":  name,
			"kind":   completionKindVariable,
			"detail": "variable",
		})
	}
	return items
}

func (s *lspServer) hover(params lspTextDocumentPositionParams) any {
	word := wordAtPosition(s.docs[params.TextDocument.URI], params.Position.Line, params.Position.Character)
	if word == "" {
		return nil
	}

	var detail string
	switch pos, declared := s.declaredNames(params.TextDocument.URI)[word]; {
	case nook.LookupIdent(word) != nook.TokenIdent:
		detail = "Nook keyword"
	case declared:
		detail = "variable declared at " + strconv.Itoa(pos.Line) + ":" + strconv.Itoa(pos.Column)
	default:
		detail = "identifier"
	}
	return map[string]any{
		"contents": map[string]any{
			"kind":  "markdown",
			"value": fmt.Sprintf("`%s`\n\n%s", word, detail),
		},
	}
}

func wordAtPosition(source string, line, character int) string {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}

	runes := []rune(lines[line])
	if len(runes) == 0 {
		return ""
	}
	character = min(max(character, 0), len(runes))

	cursor := character
	if cursor == len(runes) {
		cursor--
	}
	if !isWordRune(runes[cursor]) {
		if cursor > 0 && isWordRune(runes[cursor-1]) {
			cursor--
		} else {
			return ""
		}
	}

	start := cursor
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := cursor
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return string(runes[start:end])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (s *lspServer) readPayload() ([]byte, error) {
	contentLength := -1
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %w", err)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, errors.New("missing Content-Length header")
	}
	payload := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *lspServer) writePayload(msg lspOutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := s.writer.Write(data); err != nil {
		return err
	}
	return s.writer.Flush()
}
