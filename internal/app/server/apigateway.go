package server

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gadgeski/Docker-Assignment1/pkg/logging"
	"go.uber.org/zap"
)

// HandleAPIGateway serves an API Gateway proxy event through the route table
// so the Lambda deployment answers exactly like the HTTP server.
func (rt *RouteTable) HandleAPIGateway(
	ctx context.Context,
	event events.APIGatewayProxyRequest,
) (events.APIGatewayProxyResponse, error) {
	resp := rt.Dispatch(Request{
		Method: event.HTTPMethod,
		Path:   event.Path,
	})
	logging.Debug("api gateway request handled",
		zap.String("request_id", event.RequestContext.RequestID),
		zap.String("method", event.HTTPMethod),
		zap.String("path", event.Path),
		zap.Int("status", resp.StatusCode),
	)
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": contentType},
		Body:       resp.Body,
	}, nil
}
