package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/brettwhite-git/suiteprompt/api"
	"github.com/brettwhite-git/suiteprompt/internal/captcha"
	"github.com/brettwhite-git/suiteprompt/internal/catalog"
	"github.com/brettwhite-git/suiteprompt/internal/config"
	"github.com/brettwhite-git/suiteprompt/internal/ghrepo"
	"github.com/brettwhite-git/suiteprompt/internal/mailer"
	"github.com/brettwhite-git/suiteprompt/internal/progress"
	"github.com/brettwhite-git/suiteprompt/internal/submission"
	"github.com/brettwhite-git/suiteprompt/internal/taxonomy"
)

var (
	osExit                 = os.Exit
	stderrWriter io.Writer = os.Stderr

	loadConfig   = config.Load
	loadCatalog  = catalog.Load
	loadTaxonomy = taxonomy.Load
	openProgress = progress.Open
	newServer    = api.NewServer
	runServer    = (*api.Server).Run
)

func main() {
	osExit(runMain(os.Args[1:]))
}

func runMain(args []string) int {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(stderrWriter)

	var addr string
	var configPath string
	fs.StringVar(&addr, "addr", "", "listen address (overrides config)")
	fs.StringVar(&configPath, "config", config.DefaultPath, "path to config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	tax, err := loadTaxonomy(cfg.Catalog.TaxonomyPath)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	prog, err := openProgress(cfg.Progress.Path)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	svc := buildSubmissionService(cfg, tax)

	srv, err := newServer(cfg, cat, tax, svc, prog)
	if err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	if strings.TrimSpace(addr) == "" {
		addr = cfg.Server.Addr
	}
	if err := runServer(srv, addr); err != nil {
		fmt.Fprintln(stderrWriter, err)
		return 1
	}

	return 0
}

func buildSubmissionService(cfg *config.Config, tax *taxonomy.Taxonomy) *submission.Service {
	repo := ghrepo.NewClient(cfg.GitHub.Token,
		ghrepo.WithRepository(cfg.GitHub.Owner, cfg.GitHub.Repo),
		ghrepo.WithBaseBranch(cfg.GitHub.BaseBranch),
	)

	var captchaOpts []captcha.Option
	if strings.TrimSpace(cfg.Captcha.Endpoint) != "" {
		captchaOpts = append(captchaOpts, captcha.WithEndpoint(cfg.Captcha.Endpoint))
	}
	verifier := captcha.New(cfg.Captcha.Secret, captchaOpts...)

	m := mailer.NewResend(cfg.Email.APIKey, cfg.Email.From)

	return submission.NewService(repo, verifier, m, tax)
}
