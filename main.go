//go:build !gui

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/metcalfc/pagr/internal/config"
	"github.com/metcalfc/pagr/internal/display"
	"github.com/metcalfc/pagr/internal/logging"
	"github.com/metcalfc/pagr/internal/reader"
	"github.com/metcalfc/pagr/internal/session"
	"go.uber.org/zap"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAFF"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

const controls = "N/→: next  P/←: previous  Home/End: first/last  O: open  S: words/page  Q: quit"

type prompt int

const (
	promptNone prompt = iota
	promptOpen
	promptPageSize
)

type model struct {
	*session.Session
	screen   *display.Screen
	input    textinput.Model
	prompt   prompt
	notice   session.Notice
	quitting bool
	width    int
	height   int
}

func newModel(cfg config.Config, logger *zap.Logger) model {
	screen := display.NewScreen(cfg.Columns, cfg.Rows)

	input := textinput.New()
	input.CharLimit = 4096
	input.Width = cfg.Columns

	return model{
		Session: session.New(screen,
			session.WithPageSize(cfg.PageSize),
			session.WithLogger(logger),
		),
		screen: screen,
		input:  input,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}

		m.notice = session.Notice{}
		switch msg.String() {
		case "n", "right", " ", "pgdown":
			m.notice = m.Next()
		case "p", "left", "pgup":
			m.notice = m.Previous()
		case "home", "g":
			m.notice = m.First()
		case "end", "G":
			m.notice = m.Last()
		case "o", "O":
			return m.openPrompt(promptOpen, "Open: ", "")
		case "s", "S":
			if !m.Loaded() {
				m.notice = m.SetPageSize(m.PageSize())
				return m, nil
			}
			return m.openPrompt(promptPageSize, "Words per page: ", fmt.Sprint(m.PageSize()))
		case "q", "Q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.prompt != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) openPrompt(p prompt, label, value string) (tea.Model, tea.Cmd) {
	m.prompt = p
	m.input.Prompt = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) closePrompt() model {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closePrompt(), nil

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.prompt {
		case promptOpen:
			if value == "" {
				return m.closePrompt(), nil
			}
			m = m.closePrompt()
			m.notice = m.Open(value)
		case promptPageSize:
			n, err := config.ParsePageSize(value)
			if err != nil {
				// The prompt stays open until the value is valid or cancelled.
				m.notice = session.Notice{Level: session.Error, Title: "Error", Text: err.Error() + "."}
				return m, nil
			}
			m = m.closePrompt()
			m.notice = m.SetPageSize(n)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(statusStyle.Render(m.Status()))
	sb.WriteString("\n")

	panel := m.screen.View()
	if !m.Loaded() {
		panel = lipgloss.NewStyle().
			Width(m.screen.Columns).
			Height(m.screen.Rows).
			Border(lipgloss.NormalBorder()).
			Foreground(lipgloss.Color("#666666")).
			Render("Press O to open an ePub.")
	}

	// Reserve 4 lines: status, notice, prompt and controls.
	body := lipgloss.Place(m.width, max(m.height-4, lipgloss.Height(panel)),
		lipgloss.Center, lipgloss.Center, panel)
	sb.WriteString(body)
	sb.WriteString("\n")

	sb.WriteString(renderNotice(m.notice))
	sb.WriteString("\n")

	if m.prompt != promptNone {
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n")

	sb.WriteString(controlsStyle.Render(controls))

	return sb.String()
}

func renderNotice(n session.Notice) string {
	text := strings.ReplaceAll(n.Text, "\n", " ")
	switch n.Level {
	case session.Info:
		return infoStyle.Render(text)
	case session.Warning:
		return warningStyle.Render(n.Title + ": " + text)
	case session.Error:
		return errorStyle.Render(n.Title + ": " + text)
	}
	return ""
}

// dump writes every page of filename to stdout.
func dump(filename string, cfg config.Config, logger *zap.Logger) error {
	s := session.New(display.NewWriter(os.Stdout),
		session.WithPageSize(cfg.PageSize),
		session.WithLogger(logger),
	)
	if n := s.Open(filename); !n.Empty() {
		return fmt.Errorf("%s", strings.ReplaceAll(n.Text, "\n", " "))
	}
	return s.Pages()
}

func main() {
	configPath := flag.String("config", config.Path(), "Path to the YAML config file")
	flag.Int("n", 0, "Words per page (1-9999, default from config or 20)")
	flag.String("log", "", "Write a JSON log to this file")
	flag.Bool("debug", false, "Log at debug level")
	dumpPages := flag.Bool("dump", false, "Print every page to stdout and exit")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Pagr - Terminal E-Ink Reader Simulator\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pagr [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nFormats: %s (anything else is read as plain text)\n", strings.Join(reader.SupportedFormats(), ", "))
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pagr book.epub              Read at 20 words per page\n")
		fmt.Fprintf(os.Stderr, "  pagr -n 50 book.epub        Read at 50 words per page\n")
		fmt.Fprintf(os.Stderr, "  pagr -dump book.epub | less Print all pages\n")
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  N/→/SPACE  Next page\n")
		fmt.Fprintf(os.Stderr, "  P/←        Previous page\n")
		fmt.Fprintf(os.Stderr, "  Home/End   First/last page\n")
		fmt.Fprintf(os.Stderr, "  O          Open a file\n")
		fmt.Fprintf(os.Stderr, "  S          Set words per page\n")
		fmt.Fprintf(os.Stderr, "  Q          Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("pagr %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Override(flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *dumpPages {
		if flag.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "Error: -dump needs a file.")
			os.Exit(1)
		}
		if err := dump(flag.Arg(0), cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	m := newModel(cfg, logger)
	if flag.NArg() > 0 {
		m.notice = m.Open(flag.Arg(0))
		if m.notice.Level == session.Error {
			fmt.Fprintf(os.Stderr, "Error: %s\n", strings.ReplaceAll(m.notice.Text, "\n", " "))
			os.Exit(1)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
