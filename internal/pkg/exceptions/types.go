package exceptions

import (
	"embrew-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidFormat = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidFormat, source))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrTooManyRequests = func(client string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevRateLimited, client))
	}
	ErrMethodNotAllowed = func(method string) *CustomError {
		return BuildNewCustomError(fmt.Errorf("method %s", method), constvars.StatusMethodNotAllowed, constvars.ErrClientMethodNotAllowed, constvars.ErrDevInvalidInput)
	}

	// Origin (network failures)
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPageNotAvailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPageNotAvailable, constvars.ErrDevReadBody)
	}
	ErrOriginStatus = func(path string, statusCode int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientPageNotAvailable, fmt.Sprintf(constvars.ErrDevOriginStatus, path, statusCode))
	}
	ErrDecodeBody = func(err error, encoding string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPageNotAvailable, fmt.Sprintf(constvars.ErrDevCannotDecodeBody, encoding))
	}
	ErrBodyTooLarge = func(err error, maxSize int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPageNotAvailable, fmt.Sprintf(constvars.ErrDevBodyTooLarge, maxSize))
	}
	ErrEncodeBody = func(err error, encoding string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCannotEncodeBody, encoding))
	}

	// Configuration sheet (parse failures)
	ErrCannotParseConfiguration = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotParseConfiguration)
	}
	ErrCannotParseSheetDate = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCannotParseSheetDate, value))
	}
	ErrCannotParseTimeOfDay = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCannotParseTimeOfDay, value))
	}
	ErrOpeningHoursMissingDay = func(day string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevOpeningHoursMissingDay, day))
	}
	ErrOpeningHoursInvalidFormat = func(value string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevOpeningHoursInvalidFormat, value))
	}

	// Page decoration
	ErrBannerTemplateMissing = func(category, key string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevBannerTemplateMissing, category, key))
	}
	ErrPageElementMissing = func(element string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPageElementMissing, element))
	}
	ErrCannotParseHTML = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPageNotAvailable, constvars.ErrDevCannotParseHTML)
	}
	ErrCannotRenderHTML = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotRenderHTML)
	}

	// Minio
	ErrStorageGetObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageGetObject, bucketName))
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisEval = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisEvalScript)
	}

	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrMessagingChannel = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMessagingChannel)
	}
	ErrMessagingDeclareQueue = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMessagingDeclareQueue, queue))
	}
	ErrMessagingPublish = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMessagingPublish, queue))
	}
)
