package services

import (
	"time"

	"github.com/robertromore/budget-sub015/internal/calendar"
)

func SetDetectionToday(svc PatternDetectionServiceInterface, today func() calendar.Date) {
	svc.(*patternDetectionService).today = today
}

func SetPatternToday(svc PatternServiceInterface, today func() calendar.Date) {
	svc.(*patternService).today = today
}

func SetTransferMappingNow(svc TransferMappingServiceInterface, now func() time.Time) {
	svc.(*transferMappingService).now = now
}

func SetPayeeAliasNow(svc PayeeAliasServiceInterface, now func() time.Time) {
	svc.(*payeeAliasService).now = now
}
