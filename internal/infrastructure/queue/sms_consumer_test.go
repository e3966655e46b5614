package queue

import (
	"errors"
	"testing"

	mock_interfaces "susunara/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestHandleSMSMessage(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		if err := handleSMSMessage([]byte("{"), nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty receiver", func(t *testing.T) {
		if err := handleSMSMessage([]byte(`{"receiver":"","message":"hi"}`), nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("delivers to the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockISMSGateway(ctrl)

		gateway.EXPECT().Send(gomock.Any(), "01012345678", "완료되었습니다").Return(nil)

		if err := handleSMSMessage([]byte(`{"receiver":"01012345678","message":"완료되었습니다"}`), gateway); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockISMSGateway(ctrl)

		gateway.EXPECT().Send(gomock.Any(), "01012345678", "hi").Return(errors.New("provider down"))

		if err := handleSMSMessage([]byte(`{"receiver":"01012345678","message":"hi"}`), gateway); err == nil {
			t.Fatalf("expected error")
		}
	})
}
