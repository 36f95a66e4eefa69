package profile

import "github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
