package container

import (
	"io"

	"cl-interface/internal/application/usecases"
	"cl-interface/internal/domain/constants"
	"cl-interface/internal/domain/interfaces"
	"cl-interface/internal/domain/services"
	"cl-interface/internal/infrastructure/adapters"
	"cl-interface/internal/infrastructure/config"
	"cl-interface/internal/infrastructure/metrics"
	"cl-interface/internal/infrastructure/params"
	"cl-interface/internal/infrastructure/result"

	"github.com/sirupsen/logrus"
)

// Container는 의존성 주입을 관리하는 컨테이너입니다
type Container struct {
	config *config.Config
	logger *logrus.Logger
	stdout io.Writer

	// 인프라스트럭처 어댑터들
	fileSystem     interfaces.FileSystem
	clock          interfaces.Clock
	argumentLoader interfaces.ArgumentLoader
	recorder       *metrics.Recorder
	reporter       *result.Reporter

	// 도메인 서비스들
	classifier *services.InterfaceClassifier
	assembler  *services.ConfigAssembler

	// 유스케이스
	configureInterfaceUseCase *usecases.ConfigureInterfaceUseCase
}

// NewContainer는 새로운 Container를 생성합니다. 모듈 결과는 stdout에 기록됩니다.
func NewContainer(cfg *config.Config, logger *logrus.Logger, stdout io.Writer) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
		stdout: stdout,
	}

	if err := container.initializeInfrastructure(); err != nil {
		return nil, err
	}

	if err := container.initializeServices(); err != nil {
		return nil, err
	}

	if err := container.initializeUseCases(); err != nil {
		return nil, err
	}

	return container, nil
}

// initializeInfrastructure는 인프라스트럭처 컴포넌트들을 초기화합니다
func (c *Container) initializeInfrastructure() error {
	c.fileSystem = adapters.NewRealFileSystem()
	c.clock = adapters.NewRealClock()
	c.argumentLoader = params.NewFileArgumentLoader(c.fileSystem, c.logger)
	c.reporter = result.NewReporter(c.stdout, c.config.Output.Format, c.logger)

	c.recorder = metrics.NewRecorder()
	c.recorder.SetModuleInfo(constants.ModuleVersion)

	return nil
}

// initializeServices는 서비스들을 초기화합니다
func (c *Container) initializeServices() error {
	c.classifier = services.NewInterfaceClassifier()
	c.assembler = services.NewConfigAssembler()
	return nil
}

// initializeUseCases는 유스케이스들을 초기화합니다
func (c *Container) initializeUseCases() error {
	c.configureInterfaceUseCase = usecases.NewConfigureInterfaceUseCase(
		c.classifier,
		c.assembler,
		c.recorder,
		c.clock,
		c.logger,
	)
	return nil
}

// GetConfig는 설정을 반환합니다
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetArgumentLoader는 인자 로더를 반환합니다
func (c *Container) GetArgumentLoader() interfaces.ArgumentLoader {
	return c.argumentLoader
}

// GetReporter는 결과 리포터를 반환합니다
func (c *Container) GetReporter() *result.Reporter {
	return c.reporter
}

// GetMetricsRecorder는 메트릭 레코더를 반환합니다
func (c *Container) GetMetricsRecorder() *metrics.Recorder {
	return c.recorder
}

// GetConfigureInterfaceUseCase는 인터페이스 설정 유스케이스를 반환합니다
func (c *Container) GetConfigureInterfaceUseCase() *usecases.ConfigureInterfaceUseCase {
	return c.configureInterfaceUseCase
}

// Close는 컨테이너를 정리합니다. 설정된 경우 메트릭을 textfile로 기록합니다.
func (c *Container) Close() error {
	path := c.config.Metrics.TextfilePath
	if path == "" {
		return nil
	}

	if err := c.recorder.WriteTextfile(path); err != nil {
		return err
	}
	c.logger.WithField("path", path).Debug("Metrics written")
	return nil
}
