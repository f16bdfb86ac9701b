package startup

import (
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/bam-broker/helpers"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

type ConfigValidator interface {
	Validate() error
}

type ConfigLoader[T ConfigValidator] func(path string) (T, error)

func ParseFlags() string {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	return path
}

// LoadAndValidateConfig reports failures on stdout since no logger exists
// yet.
func LoadAndValidateConfig[T ConfigValidator](path string, loader ConfigLoader[T]) (T, error) {
	var zero T
	conf, err := loader(path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		return zero, err
	}

	if err = conf.Validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		return zero, err
	}
	return conf, nil
}

func InitLogger(loggingConfig *helpers.LoggingConfig, serviceName string) lager.Logger {
	return helpers.InitLoggerFromConfig(loggingConfig, serviceName)
}

// StartServices runs members in order under sigmon and blocks until the
// group exits.
func StartServices(logger lager.Logger, members grouper.Members) error {
	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")
	err := <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		return err
	}
	logger.Info("exited")
	return nil
}

func ExitOnError(err error, logger lager.Logger, message string, data ...lager.Data) {
	if err == nil {
		return
	}
	if len(data) > 0 {
		logger.Error(message, err, data[0])
	} else {
		logger.Error(message, err)
	}
	os.Exit(1)
}

// Bootstrap parses the -c flag, loads and validates the configuration and
// builds the root logger. Any failure exits the process.
func Bootstrap[T ConfigValidator](serviceName string, loader ConfigLoader[T], logging func(T) *helpers.LoggingConfig) (T, lager.Logger) {
	path := ParseFlags()

	conf, err := LoadAndValidateConfig(path, loader)
	if err != nil {
		os.Exit(1)
	}
	return conf, InitLogger(logging(conf), serviceName)
}
