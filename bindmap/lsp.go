package bindmap

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/ctlbind/descriptor"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "ctlbind"

type LSPServer struct {
	store   *Store
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		store:   New("."),
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCompletion: ls.textDocumentCompletion,
		TextDocumentHover:      ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.store = New(rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"/"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.store.ScanAll(); err != nil {
		log.Warningf("scan %s: %s", ls.store.RootDir(), err)
	}
	log.Infof("loaded %d binding maps from %s", len(ls.store.Files()), ls.store.RootDir())
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	m := ls.store.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, m)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			m := ls.store.UpdateFile(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, params.TextDocument.URI, m)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.publishDiagnostics(ctx, params.TextDocument.URI, nil)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.store.UpdateFile(path, []byte(*params.Text))
	} else if err := ls.store.ScanFile(path); err != nil {
		log.Warningf("rescan %s: %s", path, err)
		return nil
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI, ls.store.GetFile(path))
	return nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri string, m *Map) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: toProtocolDiagnostics(m),
	})
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	m := ls.store.GetFile(path)
	if m == nil {
		return nil, nil
	}

	line := m.Line(int(params.Position.Line) + 1)
	keywords := completionsAt(line, int(params.Position.Character))
	if len(keywords) == 0 {
		return nil, nil
	}

	kind := protocol.CompletionItemKindKeyword
	var items []protocol.CompletionItem
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  &kind,
		})
	}

	return items, nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	m := ls.store.GetFile(path)
	if m == nil {
		return nil, nil
	}

	entry := m.EntryAt(int(params.Position.Line) + 1)
	if entry == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverText(entry.Descriptor),
		},
	}, nil
}

// completionsAt returns the path keywords matching the partial segment
// that ends at col. Nothing is offered once the path is complete.
func completionsAt(line string, col int) []string {
	if col > len(line) {
		col = len(line)
	}
	if col < 0 {
		col = 0
	}
	prefix := strings.TrimLeft(line[:col], " \t")
	if strings.HasPrefix(prefix, "#") || strings.Contains(prefix, " ") {
		return nil
	}

	partial := prefix
	var done []string
	if i := strings.LastIndexByte(prefix, '/'); i >= 0 {
		done = strings.FieldsFunc(prefix[:i], func(r rune) bool { return r == '/' })
		partial = prefix[i+1:]
	}

	var out []string
	for _, kw := range descriptor.Completions(done) {
		if strings.HasPrefix(kw, partial) {
			out = append(out, kw)
		}
	}
	return out
}

func toProtocolDiagnostics(m *Map) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if m == nil {
		return diagnostics
	}

	source := lsName
	for _, d := range m.Diagnostics {
		severity := protocol.DiagnosticSeverityError
		if d.Severity == SeverityWarning {
			severity = protocol.DiagnosticSeverityWarning
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(d.Line - 1), Character: protocol.UInteger(d.StartCol)},
				End:   protocol.Position{Line: protocol.UInteger(d.Line - 1), Character: protocol.UInteger(d.EndCol)},
			},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return diagnostics
}

func hoverText(d *descriptor.Descriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**", d.TopLevelType())
	if d.Subtype().IsSet() {
		fmt.Fprintf(&sb, " `%s`", d.Subtype())
	}
	sb.WriteString("\n\n")

	switch d.TopLevelType() {
	case descriptor.NamedRoute:
		fmt.Fprintf(&sb, "- name: %s\n", d.TopLevelName())
	case descriptor.SelectionCount:
		fmt.Fprintf(&sb, "- selection: %d (bank relative)\n", d.RawSelectionID())
	case descriptor.Unclassified:
	default:
		if d.Banked() {
			fmt.Fprintf(&sb, "- position: %d (bank relative)\n", d.RawPresentationOrder())
		} else {
			fmt.Fprintf(&sb, "- position: %d\n", d.PresentationOrder())
		}
	}
	for i, t := range d.Targets() {
		fmt.Fprintf(&sb, "- target[%d]: %d\n", i, t)
	}
	return sb.String()
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
