package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/cryptox"
	pb "github.com/dmitrijs2005/keyescrow/internal/proto"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"google.golang.org/protobuf/types/known/emptypb"
)

// handler implements pb.EscrowServer on top of the escrow service.
type handler struct {
	pb.UnimplementedEscrowServer
	server *GRPCServer
}

func (h *handler) fail(ctx context.Context, method string, err error) error {
	return h.server.toStatus(ctx, method, err)
}

func (h *handler) CreateKey(ctx context.Context, req *pb.CreateKeyRequest) (*pb.CreateKeyResponse, error) {
	id, err := h.server.escrow.CreateKey(ctx, req.GetIdentifier(), req.GetPin())
	if errors.Is(err, common.ErrorConflict) {
		// The identifier already guards a key. Answer like a fresh
		// creation so callers cannot discover registered identifiers.
		h.server.logger.Debug(ctx, "create key for verified owner")
		fake, idErr := cryptox.NewID()
		if idErr != nil {
			return nil, h.fail(ctx, "CreateKey", idErr)
		}
		return &pb.CreateKeyResponse{KeyId: fake}, nil
	}
	if err != nil {
		return nil, h.fail(ctx, "CreateKey", err)
	}
	return &pb.CreateKeyResponse{KeyId: id}, nil
}

func (h *handler) AddOwner(ctx context.Context, req *pb.AddOwnerRequest) (*emptypb.Empty, error) {
	err := h.server.escrow.AddOwner(ctx, req.GetKeyId(), req.GetIdentifier(), req.GetPin())
	if err != nil && !errors.Is(err, common.ErrorConflict) {
		return nil, h.fail(ctx, "AddOwner", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *handler) VerifyOwner(ctx context.Context, req *pb.VerifyOwnerRequest) (*emptypb.Empty, error) {
	if err := h.server.escrow.VerifyOwner(ctx, req.GetKeyId(), req.GetIdentifier(), req.GetCode()); err != nil {
		return nil, h.fail(ctx, "VerifyOwner", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *handler) RequestCode(ctx context.Context, req *pb.RequestCodeRequest) (*emptypb.Empty, error) {
	if err := h.server.escrow.RequestCode(ctx, req.GetKeyId(), req.GetIdentifier(), models.Operation(req.GetOp())); err != nil {
		return nil, h.fail(ctx, "RequestCode", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *handler) ReadKey(ctx context.Context, req *pb.ReadKeyRequest) (*pb.ReadKeyResponse, error) {
	key, err := h.server.escrow.ReadKey(ctx, req.GetKeyId(), req.GetIdentifier(), req.GetCode(), req.GetPin())
	if err != nil {
		return nil, h.fail(ctx, "ReadKey", err)
	}
	return &pb.ReadKeyResponse{KeyId: key.ID, EncryptionKey: key.EncryptionKey}, nil
}

func (h *handler) ChangePin(ctx context.Context, req *pb.ChangePinRequest) (*emptypb.Empty, error) {
	if err := h.server.escrow.ChangePin(ctx, req.GetKeyId(), req.GetIdentifier(), req.GetCode(), req.GetPin(), req.GetNewPin()); err != nil {
		return nil, h.fail(ctx, "ChangePin", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *handler) ResetPin(ctx context.Context, req *pb.ResetPinRequest) (*emptypb.Empty, error) {
	if err := h.server.escrow.ResetPin(ctx, req.GetKeyId(), req.GetIdentifier(), req.GetCode(), req.GetNewPin()); err != nil {
		return nil, h.fail(ctx, "ResetPin", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *handler) RemoveKey(ctx context.Context, req *pb.RemoveKeyRequest) (*emptypb.Empty, error) {
	if err := h.server.escrow.RemoveKey(ctx, req.GetKeyId(), req.GetIdentifier(), req.GetCode(), req.GetPin()); err != nil {
		return nil, h.fail(ctx, "RemoveKey", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *handler) RemoveOwner(ctx context.Context, req *pb.RemoveOwnerRequest) (*emptypb.Empty, error) {
	if err := h.server.escrow.RemoveOwner(ctx, req.GetKeyId(), req.GetIdentifier(), req.GetCode(), req.GetPin()); err != nil {
		return nil, h.fail(ctx, "RemoveOwner", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *handler) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
