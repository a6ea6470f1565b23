package constants

// 호스트 엔진이 전달하는 파라미터 이름
const (
	ParamName       = "name"
	ParamBridgeMems = "bridgemems"
	ParamBondMems   = "bondmems"
	ParamIPv4       = "ipv4"
	ParamIPv6       = "ipv6"

	// 호스트 엔진 내부 파라미터 접두사 (무시함)
	InternalParamPrefix = "_ansible_"
)

// 출력 형식
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// 기본값 상수들
const (
	DefaultLogLevel     = "info"
	DefaultOutputFormat = OutputFormatJSON
	MetricsNamespace    = "cl_interface"
	ModuleVersion       = "0.1.0"
)
