package dig_container

import (
	"log"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	echoapi "github.com/trezcool/ecoquest/apps/api/echo"
	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/photo"
	"github.com/trezcool/ecoquest/core/records"
	"github.com/trezcool/ecoquest/core/session"
	"github.com/trezcool/ecoquest/core/user"
	emailsvc "github.com/trezcool/ecoquest/services/email"
	logsvc "github.com/trezcool/ecoquest/services/logger"
)

func newZap(conf *core.Config) (*zap.Logger, error) {
	if conf.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProductionConfig().Build()
}

func newLogger(zl *zap.Logger, conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(zl.Named("api"), conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.Debug {
		return emailsvc.NewConsoleService(conf, logger)
	}
	return emailsvc.NewSendgridService(conf, logger)
}

// newValidator registers every validator the API needs on one validate/translator pair.
func newValidator(translator ut.Translator) *validator.Validate {
	validate := core.NewValidator(translator)
	user.InitValidators(validate, translator)
	photo.InitValidators(validate, translator)
	return validate
}

func newUserService(validate *validator.Validate) *user.Service {
	return user.NewService(user.NewMemRepository(), validate)
}

func newSessionRegistry(
	conf *core.Config,
	validate *validator.Validate,
	mailSvc core.EmailService,
	metrics *echoapi.Metrics,
) *session.Registry {
	return session.NewRegistry(session.Options{
		Deps:       records.Deps{Validate: validate},
		Mailer:     mailSvc,
		ReplyDelay: conf.Chat.ReplyDelay,
		RateLimit:  rate.Limit(conf.Server.RateLimit),
		RateBurst:  conf.Server.RateBurst,
		OnReply:    metrics.ObserveReply,
	})
}

func newJanitor(
	conf *core.Config,
	registry *session.Registry,
	logger core.Logger,
	metrics *echoapi.Metrics,
) (*session.Janitor, error) {
	j, err := session.NewJanitor(registry, conf.Session.JanitorCron, conf.Session.IdleTTL, logger)
	if err != nil {
		return nil, err
	}
	j.OnSweep = metrics.ObserveSweep
	return j, nil
}

type serverParams struct {
	dig.In

	Conf       *core.Config
	Logger     core.Logger
	Users      *user.Service
	Sessions   *session.Registry
	Translator ut.Translator
	Metrics    *echoapi.Metrics
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		Users:      p.Users,
		Sessions:   p.Sessions,
		Translator: p.Translator,
		Metrics:    p.Metrics,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newZap))
	must(c.Provide(newLogger))
	must(c.Provide(newEmailService))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newUserService))
	must(c.Provide(echoapi.NewMetrics))
	must(c.Provide(newSessionRegistry))
	must(c.Provide(newJanitor))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
