package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/vncsmyrnk/polls/internal/adapters/handler/http"
	repo "github.com/vncsmyrnk/polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
	"github.com/vncsmyrnk/polls/internal/core/services"
	"github.com/vncsmyrnk/polls/internal/metrics"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	Questions   ports.QuestionService
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(ctx, db))

	questionRepo := repo.NewQuestionRepository(db)
	choiceRepo := repo.NewChoiceRepository(db)
	log, _ := test.NewNullLogger()
	m := metrics.New()

	questionSvc := services.NewQuestionService(questionRepo, choiceRepo, log)
	voteSvc := services.NewVoteService(questionRepo, choiceRepo, m, log)

	router := handler.NewHandler(
		handler.NewQuestionHandler(questionSvc, nil, log),
		handler.NewVoteHandler(voteSvc, questionSvc, log),
		db,
		m,
		log,
	)
	server := httptest.NewServer(router)

	client := server.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      client,
		Questions:   questionSvc,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// createQuestion publishes a question offset by days from now, with the
// given choice texts.
func (app *TestApp) createQuestion(t *testing.T, text string, days int, choices ...string) *domain.Question {
	t.Helper()

	ctx := context.Background()
	q, err := app.Questions.CreateQuestion(ctx, ports.CreateQuestionInput{
		Text:    text,
		PubDate: time.Now().AddDate(0, 0, days),
	})
	require.NoError(t, err)

	for _, c := range choices {
		choice, err := app.Questions.CreateChoice(ctx, ports.CreateChoiceInput{QuestionID: q.ID, Text: c, Color: "#e3a8f9"})
		require.NoError(t, err)
		q.Choices = append(q.Choices, *choice)
	}
	return q
}
