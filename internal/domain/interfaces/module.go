package interfaces

import (
	"cl-interface/internal/domain/entities"
)

// ArgumentLoader는 호스트 엔진이 전달한 인자 파일을 InterfaceRequest로 변환하는 인터페이스입니다
type ArgumentLoader interface {
	// Load는 인자 파일을 읽고 호스트 엔진 수준의 제약(필수 인자, 상호 배타 인자)을 검사합니다
	Load(path string) (entities.InterfaceRequest, error)
}

// MetricsRecorder는 모듈 실행 결과를 기록하는 인터페이스입니다
type MetricsRecorder interface {
	// RecordClassification은 분류 성공을 기록합니다
	RecordClassification(ifaceType entities.InterfaceType, addressCount int, duration float64)

	// RecordError는 실패를 에러 타입별로 기록합니다
	RecordError(errorType string)
}
