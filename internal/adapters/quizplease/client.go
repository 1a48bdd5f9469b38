package quizplease

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"quizreg/internal/domain"
)

// Team is the fixed identity submitted with every registration.
type Team struct {
	Name        string
	Phone       string
	Email       string
	CaptainName string
	Size        string
}

// Config holds the endpoints and page markers for one city's QuizPlease site.
type Config struct {
	ScheduleURL   string
	GamePageURL   string // format template, %s is the game id
	RegURL        string
	TargetHeading string
	CitySuffix    string
	Team          Team
}

// Client talks to the public QuizPlease pages and the registration endpoint.
// It implements domain.ScheduleFetcher, domain.GameDetailFetcher and
// domain.Registrar.
type Client struct {
	client *http.Client
	cfg    Config
	logger *slog.Logger
}

// NewClient returns a Client using the given HTTP client, which should carry
// a finite timeout.
func NewClient(client *http.Client, cfg Config, logger *slog.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{client: client, cfg: cfg, logger: logger}
}

// FetchSchedule downloads and parses the schedule page, partitioning games by
// the target heading.
func (c *Client) FetchSchedule(ctx context.Context) ([]domain.GameRef, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ScheduleURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule page returned status: %d", resp.StatusCode)
	}

	refs, err := parseSchedule(resp.Body, c.cfg.TargetHeading)
	if err != nil {
		return nil, err
	}
	c.logger.Info("parsed schedule page", "games", len(refs))
	return refs, nil
}

// FetchGameDetails downloads and parses one game page.
func (c *Client) FetchGameDetails(ctx context.Context, gameID string) (*domain.GameDetails, error) {
	pageURL := fmt.Sprintf(c.cfg.GamePageURL, gameID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create game page request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game page %s: %w", gameID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("game page %s: %w", gameID, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("game page %s returned status: %d", gameID, resp.StatusCode)
	}
	return parseGamePage(resp.Body, c.cfg.CitySuffix)
}

// Register submits the fixed team form for gameID. Payment type 2 is the
// venue's "pay at the game" code.
func (c *Client) Register(ctx context.Context, gameID string) error {
	form := url.Values{}
	form.Set("QpRecord[teamName]", c.cfg.Team.Name)
	form.Set("QpRecord[phone]", c.cfg.Team.Phone)
	form.Set("QpRecord[email]", c.cfg.Team.Email)
	form.Set("QpRecord[captainName]", c.cfg.Team.CaptainName)
	form.Set("QpRecord[count]", c.cfg.Team.Size)
	form.Set("QpRecord[custom_fields_values]", "")
	form.Set("QpRecord[comment]", "")
	form.Set("QpRecord[game_id]", gameID)
	form.Set("QpRecord[payment_type]", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.RegURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	// Historical misspelled header the endpoint has always received; kept
	// until its behavior without it is verified against the live endpoint.
	req.Header.Set("Contect-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRegistrationFailed, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", domain.ErrRegistrationFailed, resp.StatusCode, body)
	}
	c.logger.Info("registration result", "game_id", gameID, "response", string(body))
	return nil
}
