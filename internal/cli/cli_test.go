package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/castlewars/internal/factory"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/render"
	"github.com/mcoot/castlewars/internal/rules"
	"github.com/mcoot/castlewars/internal/services/match"
)

type CLISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupSuite() {
	color.NoColor = true
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.server = httptest.NewServer(s.app.Router())
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

// run executes the CLI in-process and returns stdout, stderr and the command error
func (s *CLISuite) run(stdin string, args ...string) (string, string, error) {
	cmd := NewRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--server", s.server.URL, "--storage", "memory"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (s *CLISuite) writeRules(content string) string {
	path := filepath.Join(s.T().TempDir(), "rules.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CLISuite) recordMatch() *model.MatchSummary {
	cfg := rules.DefaultConfig()
	cfg.MaxTurns = 3
	summary, err := s.app.Runner.Run(context.Background(), match.Setup{Rules: cfg})
	s.Require().NoError(err)
	return summary
}

func (s *CLISuite) TestRulesText() {
	out, _, err := s.run("", "rules")
	s.Require().NoError(err)
	s.Contains(out, "starting_gold: 5")
	s.Contains(out, "price_growth: 1.2")
	s.Contains(out, "Knight")
}

func (s *CLISuite) TestRulesJSONFromFile() {
	path := s.writeRules("starting_gold: 40\nprice_growth: 1.0\n")

	out, _, err := s.run("", "--rules", path, "-o", "json", "rules")
	s.Require().NoError(err)

	var got rulesOutput
	s.Require().NoError(json.Unmarshal([]byte(out), &got))
	s.Equal(40, got.Rules.StartingGold)
	s.Equal(1.0, got.Rules.PriceGrowth)
	s.Equal(1000, got.Rules.MaxTurns)
	s.Len(got.Units, 4)
}

func (s *CLISuite) TestInvalidRulesFile() {
	path := s.writeRules("max_turns: 0\n")

	_, _, err := s.run("", "--rules", path, "rules")
	s.ErrorIs(err, model.ErrInvalidRules)
}

func (s *CLISuite) TestPlayWithoutOpponentsWins() {
	path := s.writeRules("opponents: []\n")

	out, _, err := s.run("", "--rules", path, "play")
	s.Require().NoError(err)
	s.Contains(out, "===== Turn 1 =====")
	s.Contains(out, "=== You won after 1 turn!")
}

func (s *CLISuite) TestPlayBuysFromStdin() {
	path := s.writeRules("opponents: [Alice]\nmax_turns: 2\n")

	out, _, err := s.run("1\n\n", "--rules", path, "play", "--name", "Arthur", "--seed", "3")
	s.Require().NoError(err)
	s.Contains(out, "You have 5 gold, who do you want to buy?")
	s.Contains(out, "Bought a new Farmer.")
	s.Contains(out, "=== No winner after 2 turns")
}

func (s *CLISuite) TestPlayEventsGoToStderr() {
	path := s.writeRules("opponents: [Alice]\nmax_turns: 1\n")

	_, errOut, err := s.run("1\n", "--rules", path, "play", "--events")
	s.Require().NoError(err)
	s.Contains(errOut, "[turn 1] p1 bought a Farmer (0 gold left)")
}

func (s *CLISuite) TestSimulateJSON() {
	out, _, err := s.run("", "-o", "json", "simulate", "-n", "2", "--seed", "5", "--max-turns", "50")
	s.Require().NoError(err)

	var summaries []model.MatchSummary
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var m model.MatchSummary
		s.Require().NoError(json.Unmarshal(scanner.Bytes(), &m))
		summaries = append(summaries, m)
	}
	s.Require().Len(summaries, 2)
	s.Equal(uint64(5), *summaries[0].Seed)
	s.Equal(uint64(6), *summaries[1].Seed)
	s.LessOrEqual(summaries[0].Turns, 50)
}

func (s *CLISuite) TestSimulateIsReproducible() {
	args := []string{"-o", "json", "simulate", "--seed", "11", "--max-turns", "200"}
	first, _, err := s.run("", args...)
	s.Require().NoError(err)
	second, _, err := s.run("", args...)
	s.Require().NoError(err)

	var a, b model.MatchSummary
	s.Require().NoError(json.Unmarshal([]byte(first), &a))
	s.Require().NoError(json.Unmarshal([]byte(second), &b))
	s.Equal(a.Turns, b.Turns)
	s.Equal(a.Outcome, b.Outcome)
	s.Equal(a.Players, b.Players)
}

func (s *CLISuite) TestSimulateTally() {
	out, _, err := s.run("", "simulate", "-n", "3", "--max-turns", "20", "--opponents", "Mordred")
	s.Require().NoError(err)
	s.Contains(out, "Mordred")
	s.Contains(out, "3 matches:")
}

func (s *CLISuite) TestSimulateRejectsZeroGames() {
	_, _, err := s.run("", "simulate", "-n", "0")
	s.Error(err)
}

func (s *CLISuite) TestSimulateRemoteRecordsOnServer() {
	out, _, err := s.run("", "-o", "json", "simulate", "--remote", "--seed", "8", "--max-turns", "30")
	s.Require().NoError(err)

	var summary model.MatchSummary
	s.Require().NoError(json.Unmarshal([]byte(out), &summary))

	stored, err := s.app.Storage.GetMatch(context.Background(), summary.ID)
	s.Require().NoError(err)
	s.Equal(summary.Turns, stored.Turns)
}

func (s *CLISuite) TestHistoryList() {
	recorded := s.recordMatch()

	out, _, err := s.run("", "history", "list")
	s.Require().NoError(err)
	s.Contains(out, "turn limit")

	out, _, err = s.run("", "-o", "json", "history", "list", "-n", "5")
	s.Require().NoError(err)

	var listed []model.MatchSummary
	s.Require().NoError(json.Unmarshal([]byte(out), &listed))
	s.Require().Len(listed, 1)
	s.Equal(recorded.ID, listed[0].ID)
}

func (s *CLISuite) TestHistoryListEmpty() {
	out, _, err := s.run("", "history", "list")
	s.Require().NoError(err)
	s.Contains(out, "No matches recorded")
}

func (s *CLISuite) TestHistoryGet() {
	recorded := s.recordMatch()

	out, _, err := s.run("", "-o", "json", "history", "get", string(recorded.ID))
	s.Require().NoError(err)

	var got model.MatchSummary
	s.Require().NoError(json.Unmarshal([]byte(out), &got))
	s.Equal(recorded.ID, got.ID)
	s.Equal(recorded.Turns, got.Turns)
	s.Equal(model.OutcomeTurnLimit, got.Outcome)
	s.Require().Len(got.Players, len(recorded.Players))
	s.Equal(recorded.Players[0].Name, got.Players[0].Name)
}

func (s *CLISuite) TestHistoryGetNotFound() {
	_, _, err := s.run("", "history", "get", "missing")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *CLISuite) TestHistoryDelete() {
	recorded := s.recordMatch()

	out, _, err := s.run("", "history", "delete", string(recorded.ID))
	s.Require().NoError(err)
	s.Contains(out, "Deleted match")

	_, err = s.app.Storage.GetMatch(context.Background(), recorded.ID)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *CLISuite) TestHealth() {
	out, _, err := s.run("", "health")
	s.Require().NoError(err)
	s.Equal("Status: ok\n", out)
}

func (s *CLISuite) TestUnknownOutputFormat() {
	_, _, err := s.run("", "-o", "xml", "rules")
	s.ErrorIs(err, render.ErrUnknownFormat)
}
