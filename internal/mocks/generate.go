package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Gateway --dir ../domain/gameday --output domain/gameday --outpkg gamedaymock --filename gateway_mock.go
