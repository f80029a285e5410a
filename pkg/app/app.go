// Package app wires the configuration, the GitLab service, the copier and the
// report storage together.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/sgaunet/gitlab-forker/pkg/config"
	"github.com/sgaunet/gitlab-forker/pkg/constants"
	"github.com/sgaunet/gitlab-forker/pkg/forker"
	"github.com/sgaunet/gitlab-forker/pkg/gitlab"
	"github.com/sgaunet/gitlab-forker/pkg/retry"
	"github.com/sgaunet/gitlab-forker/pkg/storage"
	"github.com/sgaunet/gitlab-forker/pkg/storage/localstorage"
	"github.com/sgaunet/gitlab-forker/pkg/storage/s3storage"
	gitlabapi "gitlab.com/gitlab-org/api/client-go"
)

const (
	bannerDryRun          = "DRY RUN MODE - No actual operations will be performed"
	bannerDryRunCompleted = "DRY RUN COMPLETED - No changes were made"
	bannerCompleted       = "OPERATION COMPLETED SUCCESSFULLY"
	reportTimeLayout      = "20060102-150405"
)

var (
	// ErrInvalidStorage is returned when the local report directory is unusable.
	ErrInvalidStorage = errors.New("invalid report storage")
	// ErrTargetInsideSource is returned when a real run would copy a group
	// into itself or one of its descendants.
	ErrTargetInsideSource = errors.New("target group is the source group or one of its subgroups")
)

// Logger interface defines the logging methods used by the application.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// GitlabService is everything the application needs from GitLab.
type GitlabService interface {
	forker.API
	CurrentUser(ctx context.Context) (*gitlabapi.User, error)
}

// App copies a source group into a target group and keeps a report of the run.
type App struct {
	cfg           *config.Config
	gitlabService GitlabService
	storage       storage.Storage
	out           io.Writer
	log           Logger
}

// NewApp creates the application from a validated configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	gitlabService, err := gitlab.NewGitlabService()
	if err != nil {
		return nil, fmt.Errorf("failed to create gitlab service: %w", err)
	}
	if err := gitlabService.SetGitlabEndpoint(cfg.GitlabAPIEndpoint()); err != nil {
		return nil, fmt.Errorf("failed to set gitlab endpoint: %w", err)
	}
	if err := gitlabService.SetToken(cfg.GitlabToken); err != nil {
		return nil, fmt.Errorf("failed to set gitlab token: %w", err)
	}

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewAppWithService(cfg, gitlabService, store), nil
}

// NewAppWithService creates the application on top of an existing service.
// store may be nil, in which case no report is saved.
func NewAppWithService(cfg *config.Config, svc GitlabService, store storage.Storage) *App {
	return &App{
		cfg:           cfg,
		gitlabService: svc,
		storage:       store,
		out:           os.Stdout,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

//nolint:ireturn // storage backend is chosen from the configuration
func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	if cfg.IsS3ConfigValid() {
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.S3cfg.AccessKey != "" && cfg.S3cfg.SecretKey != "" {
			opts = append(opts, s3storage.WithStaticCredentials(cfg.S3cfg.AccessKey, cfg.S3cfg.SecretKey))
		}
		s, err := s3storage.NewS3Storage(ctx, cfg.S3cfg.Region, cfg.S3cfg.Endpoint,
			cfg.S3cfg.BucketName, cfg.S3cfg.BucketPath, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 storage: %w", err)
		}
		if err := s.Check(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStorage, err)
		}
		return s, nil
	}
	if cfg.IsLocalConfigValid() {
		s := localstorage.NewLocalStorage(cfg.LocalPath)
		if err := s.Check(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStorage, err)
		}
		return s, nil
	}
	return nil, nil //nolint:nilnil // no storage configured
}

// SetLogger sets the logger of the application and of the packages it drives.
func (a *App) SetLogger(l Logger) {
	if l == nil {
		return
	}
	a.log = l
	gitlab.SetLogger(l)
	retry.SetLogger(l)
}

// SetOutput sets where banners and the summary are printed.
func (a *App) SetOutput(w io.Writer) {
	if w != nil {
		a.out = w
	}
}

// Run authenticates, resolves both groups and copies the source into the target.
// The report is saved whether the copy succeeded or not.
func (a *App) Run(ctx context.Context) error {
	user, err := a.gitlabService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.log.Info("authenticated", "user", user.Username)

	source, err := a.gitlabService.GetGroup(ctx, a.cfg.SourceGroupID)
	if err != nil {
		return fmt.Errorf("failed to get source group %d: %w", a.cfg.SourceGroupID, err)
	}
	target, err := a.gitlabService.GetGroup(ctx, a.cfg.TargetGroupID)
	if err != nil {
		return fmt.Errorf("failed to get target group %d: %w", a.cfg.TargetGroupID, err)
	}
	// created subgroups would show up in the listings being walked
	if !a.cfg.DryRun && isWithin(target.FullPath, source.FullPath) {
		return fmt.Errorf("%w: %s is within %s", ErrTargetInsideSource, target.FullPath, source.FullPath)
	}

	report := forker.NewReport(source.FullPath, target.ID, a.cfg.DryRun)
	runErr := a.copy(ctx, source, target, report)
	report.Finish(runErr)

	a.printSummary(report)
	if saveErr := a.saveReport(ctx, report); saveErr != nil {
		if runErr != nil {
			a.log.Error("failed to save report", "error", saveErr)
			return runErr
		}
		return saveErr
	}
	return runErr
}

// isWithin reports whether path is root or below it.
func isWithin(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+"/")
}

func (a *App) copy(ctx context.Context, source, target *gitlabapi.Group, report *forker.Report) error {
	sourceID := strconv.FormatInt(source.ID, 10)
	targetID := strconv.FormatInt(target.ID, 10)

	if a.cfg.DryRun {
		a.banner(bannerDryRun)
	}
	if err := a.preCopy(ctx, sourceID, targetID); err != nil {
		return err
	}

	reporter := forker.Reporters{report, forker.NewConsoleReporter(a.log)}
	copier := forker.NewCopier(a.gitlabService, a.cfg.RetryPolicy(), a.cfg.DryRun, reporter)
	if err := copier.CopyGroup(ctx, source, forker.RemoteTarget(target.ID)); err != nil {
		return err
	}

	if a.cfg.DryRun {
		a.banner(bannerDryRunCompleted)
	} else {
		a.banner(bannerCompleted)
	}
	return a.postCopy(ctx, sourceID, targetID)
}

func (a *App) preCopy(ctx context.Context, sourceID, targetID string) error {
	if !a.cfg.Hooks.HasPreCopy() {
		return nil
	}
	cmd := a.cfg.Hooks.GeneratePreCopyCmd(sourceID, targetID)
	if a.cfg.DryRun {
		a.log.Info("[DRY RUN] Would run precopy hook", "command", cmd)
		return nil
	}
	a.log.Info("call precopy hook", "command", cmd)
	if err := a.cfg.Hooks.ExecutePreCopy(ctx, sourceID, targetID); err != nil {
		return fmt.Errorf("precopy hook: %w", err)
	}
	return nil
}

func (a *App) postCopy(ctx context.Context, sourceID, targetID string) error {
	if !a.cfg.Hooks.HasPostCopy() {
		return nil
	}
	cmd := a.cfg.Hooks.GeneratePostCopyCmd(sourceID, targetID)
	if a.cfg.DryRun {
		a.log.Info("[DRY RUN] Would run postcopy hook", "command", cmd)
		return nil
	}
	a.log.Info("call postcopy hook", "command", cmd)
	if err := a.cfg.Hooks.ExecutePostCopy(ctx, sourceID, targetID); err != nil {
		return fmt.Errorf("postcopy hook: %w", err)
	}
	return nil
}

func (a *App) banner(msg string) {
	line := strings.Repeat("=", constants.BannerWidth)
	fmt.Fprintln(a.out, line)
	fmt.Fprintln(a.out, msg)
	fmt.Fprintln(a.out, line)
}

func (a *App) printSummary(report *forker.Report) {
	verb := "forked"
	created := "created"
	if report.DryRun {
		verb = "would be forked"
		created = "would be created"
	}
	fmt.Fprintf(a.out, "%d project(s) %s, %d subgroup(s) %s\n",
		report.Summary.ProjectsForked, verb, report.Summary.SubgroupsCreated, created)
}

// ReportFilename returns the name under which the report of a run is saved.
func ReportFilename(report *forker.Report) string {
	return fmt.Sprintf("%s-%d-%s.yaml", constants.ReportFilePrefix, report.TargetGroup,
		report.StartedAt.Format(reportTimeLayout))
}

func (a *App) saveReport(ctx context.Context, report *forker.Report) error {
	if a.storage == nil {
		return nil
	}
	data, err := report.YAML()
	if err != nil {
		return err
	}
	filename := ReportFilename(report)
	// the run may have been interrupted, the report is still worth keeping
	ctx = context.WithoutCancel(ctx)
	if err := a.storage.SaveFile(ctx, bytes.NewReader(data), filename, int64(len(data))); err != nil {
		return fmt.Errorf("failed to save report %s: %w", filename, err)
	}
	a.log.Info("report saved", "file", filename)
	return nil
}
