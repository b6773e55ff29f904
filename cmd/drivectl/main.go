// Command drivectl is a small operations console for the walk-in drive
// API. It renders candidate, queue, panel, and room snapshots as
// terminal tables so floor staff can eyeball the drive without the web
// UI. Authentication uses a token from `drivectl login` via the
// DRIVECTL_TOKEN environment variable.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client := &apiClient{
		base:   envOr("DRIVE_API_URL", "http://localhost:8080"),
		prefix: envOr("DRIVE_API_PREFIX", "/api/v1"),
		token:  os.Getenv("DRIVECTL_TOKEN"),
		http:   &http.Client{Timeout: 15 * time.Second},
	}

	var err error
	switch os.Args[1] {
	case "login":
		err = cmdLogin(client, os.Args[2:])
	case "candidates":
		err = cmdCandidates(client, os.Args[2:])
	case "queue":
		err = cmdQueue(client)
	case "panels":
		err = cmdPanels(client)
	case "rooms":
		err = cmdRooms(client)
	case "help", "-h", "--help":
		usage()
	default:
		color.Red("unknown command %q", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: drivectl <command> [flags]

Commands:
  login       obtain an access token (-username, -password)
  candidates  list candidates (-status, -round, -search, -page, -limit)
  queue       show the per-round queue board
  panels      list interview panels
  rooms       list rooms and their panel assignments

Environment:
  DRIVE_API_URL     API base URL (default http://localhost:8080)
  DRIVE_API_PREFIX  API prefix (default /api/v1)
  DRIVECTL_TOKEN    access token from drivectl login`)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envelope mirrors the API response wrapper.
type envelope struct {
	Data       json.RawMessage    `json:"data"`
	Error      *appErrors.Error   `json:"error"`
	Pagination *models.Pagination `json:"pagination"`
}

type apiClient struct {
	base   string
	prefix string
	token  string
	http   *http.Client
}

func (c *apiClient) url(path string, query url.Values) string {
	u := strings.TrimRight(c.base, "/") + c.prefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *apiClient) do(method, path string, query url.Values, body, out interface{}) (*models.Pagination, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.url(path, query), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: unexpected response (%s)", path, resp.Status)
	}
	if env.Error != nil {
		return nil, fmt.Errorf("%s (%s)", env.Error.Message, env.Error.Code)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s: %s", path, resp.Status)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, err
		}
	}
	return env.Pagination, nil
}

func cmdLogin(c *apiClient, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("login requires -username and -password")
	}

	var resp models.LoginResponse
	if _, err := c.do(http.MethodPost, "/auth/login", nil, models.LoginRequest{
		Username: *username,
		Password: *password,
	}, &resp); err != nil {
		return err
	}

	color.Green("logged in as %s (%s)", resp.User.Username, resp.User.Role)
	fmt.Printf("\nexport DRIVECTL_TOKEN=%s\n", resp.AccessToken)
	return nil
}

func cmdCandidates(c *apiClient, args []string) error {
	fs := flag.NewFlagSet("candidates", flag.ExitOnError)
	status := fs.String("status", "", "filter by status")
	round := fs.String("round", "", "filter by current round")
	search := fs.String("search", "", "match name, email, or serial")
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := url.Values{}
	if *status != "" {
		query.Set("status", *status)
	}
	if *round != "" {
		query.Set("round", *round)
	}
	if *search != "" {
		query.Set("search", *search)
	}
	query.Set("page", strconv.Itoa(*page))
	query.Set("limit", strconv.Itoa(*limit))

	var candidates []models.Candidate
	pagination, err := c.do(http.MethodGet, "/candidates", query, nil, &candidates)
	if err != nil {
		return err
	}

	color.Cyan("\nCandidates")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Serial", "Name", "Position", "Status", "Round", "Panel", "Room"})
	for _, cand := range candidates {
		panel := "-"
		if cand.AssignedPanelID != 0 {
			panel = strconv.FormatInt(cand.AssignedPanelID, 10)
		}
		room := cand.RoomNo
		if room == "" {
			room = "-"
		}
		table.Append([]string{
			cand.SerialNumber,
			cand.Name,
			cand.Position,
			string(cand.Status),
			cand.CurrentRound,
			panel,
			room,
		})
	}
	table.Render()

	if pagination != nil {
		fmt.Printf("page %d/%d, %d total\n", pagination.Page, pagination.TotalPages, pagination.TotalCount)
	}
	return nil
}

// boardRoundOrder lists known rounds in pipeline order; rounds outside
// the progression table render after them, alphabetically.
var boardRoundOrder = []string{
	models.RoundGD,
	models.RoundScreening,
	models.RoundManager,
	models.RoundHR,
	models.RoundTechnical2,
}

func cmdQueue(c *apiClient) error {
	var board models.QueueBoard
	if _, err := c.do(http.MethodGet, "/queue/board", nil, nil, &board); err != nil {
		return err
	}

	rounds := make([]string, 0, len(board.Rounds))
	seen := make(map[string]bool, len(board.Rounds))
	for _, r := range boardRoundOrder {
		if _, ok := board.Rounds[r]; ok {
			rounds = append(rounds, r)
			seen[r] = true
		}
	}
	extra := make([]string, 0)
	for r := range board.Rounds {
		if !seen[r] {
			extra = append(extra, r)
		}
	}
	sort.Strings(extra)
	rounds = append(rounds, extra...)

	if len(rounds) == 0 {
		color.Yellow("queue board is empty")
		return nil
	}

	for _, r := range rounds {
		entries := board.Rounds[r]
		color.Yellow("\nRound: %s (%d waiting)", r, len(entries))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Pos", "Serial", "Name", "Status", "Registered"})
		for _, e := range entries {
			table.Append([]string{
				strconv.Itoa(e.Position),
				e.SerialNumber,
				e.Name,
				string(e.Status),
				e.RegisteredAt.Local().Format("15:04:05"),
			})
		}
		table.Render()
	}
	fmt.Printf("generated at %s\n", board.GeneratedAt.Local().Format(time.RFC3339))
	return nil
}

func cmdPanels(c *apiClient) error {
	var panels []models.Panel
	if _, err := c.do(http.MethodGet, "/panels", nil, nil, &panels); err != nil {
		return err
	}

	color.Cyan("\nInterview Panels")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Room", "Active", "Interviewing", "Members"})
	for _, p := range panels {
		room := p.RoomNo
		if room == "" {
			room = "-"
		}
		current := "-"
		if p.CurrentCandidateID != 0 {
			current = strconv.FormatInt(p.CurrentCandidateID, 10)
		}
		table.Append([]string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			room,
			strconv.FormatBool(p.Active),
			current,
			strings.Join(p.Members, ", "),
		})
	}
	table.Render()
	return nil
}

func cmdRooms(c *apiClient) error {
	var rooms []models.Room
	if _, err := c.do(http.MethodGet, "/rooms", nil, nil, &rooms); err != nil {
		return err
	}

	color.Cyan("\nRooms")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Room", "Floor", "Type", "Capacity", "Occupied", "Panels"})
	for _, r := range rooms {
		ids := make([]string, 0, len(r.AssignedPanelIDs))
		for _, id := range r.AssignedPanelIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		panels := strings.Join(ids, ", ")
		if panels == "" {
			panels = "-"
		}
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			r.RoomNo,
			r.Floor,
			string(r.Type),
			strconv.Itoa(r.Capacity),
			strconv.FormatBool(r.Occupied),
			panels,
		})
	}
	table.Render()
	return nil
}
