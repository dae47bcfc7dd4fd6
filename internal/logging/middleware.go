package logging

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// Middleware gives every request its own LogData and writes a start line and
// a completion line carrying the collected fields, the status and the
// duration in milliseconds.
func Middleware(loggingName string, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logData := NewLogData(log)
			if requestID, err := uuid.NewV4(); err == nil {
				logData.AddData("requestID", requestID.String())
			}
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			logData.Log().Infof("Handler.%v.Start", loggingName)

			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			endTimer := logData.AddTiming("duration")
			next.ServeHTTP(ww, req.WithContext(WithLogData(req.Context(), logData)))
			endTimer()

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logData.AddData("status", status)

			if status >= http.StatusInternalServerError {
				logData.Log().Errorf("Handler.%v.Error", loggingName)
				return
			}
			if logData.Err() != nil {
				logData.Log().Warnf("Handler.%v.Complete", loggingName)
				return
			}

			logData.Log().Infof("Handler.%v.Complete", loggingName)
		})
	}
}
