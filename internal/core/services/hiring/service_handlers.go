package hiring

import (
	"slices"

	"github.com/AntonioJCosta/hiring/internal/core/domain/applicant"
	"github.com/AntonioJCosta/hiring/internal/core/domain/command"
	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
)

// Detail messages appended to wrapped "Error: Command ... is invalid." responses.
const (
	DetailInvalidEmail   = "Email is invalid."
	DetailUnknownEmail   = "Email does not exist in database."
	DetailAlreadyDecided = "Applicant has already been decided."
	DetailUnknownStage   = "Stage does not exist in pipeline."
)

const (
	decisionReject = "0"
	decisionHire   = "1"
)

// DEFINE <stage>...
func (s *service) define(cmd command.Command) response.Response {
	if len(cmd.Args) == 0 {
		return response.Shape(cmd.Tokens)
	}
	s.stages = append(s.stages, cmd.Args...)
	s.logger.Debug("stages defined", "added", len(cmd.Args), "total", len(s.stages))
	return response.EchoTokens(cmd.Tokens)
}

// CREATE <email>
func (s *service) create(cmd command.Command) response.Response {
	if len(cmd.Args) != 1 {
		return response.Shape(cmd.Tokens)
	}
	email := cmd.Args[0]
	if !applicant.IsValidEmail(email) {
		return response.Invalid(response.ValidationError, cmd.Tokens, DetailInvalidEmail)
	}
	if _, exists := s.applicants[email]; exists {
		return response.Informational("Duplicate applicant")
	}
	s.applicants[email] = applicant.AtStage(0)
	s.logger.Debug("applicant created", "email", email)
	return response.EchoTokens(cmd.Tokens)
}

// ADVANCE <email> [<stage>]
func (s *service) advance(cmd command.Command) response.Response {
	if len(cmd.Args) != 1 && len(cmd.Args) != 2 {
		return response.Shape(cmd.Tokens)
	}
	email := cmd.Args[0]
	status, exists := s.applicants[email]
	if !exists {
		return response.Invalid(response.ReferenceError, cmd.Tokens, DetailUnknownEmail)
	}
	current, inPipeline := status.Stage()
	if !inPipeline {
		return response.Invalid(response.ValidationError, cmd.Tokens, DetailAlreadyDecided)
	}

	target := current + 1
	if len(cmd.Args) == 2 {
		target = slices.Index(s.stages, cmd.Args[1])
		if target < 0 {
			return response.Invalid(response.ValidationError, cmd.Tokens, DetailUnknownStage)
		}
	}

	if target == current || target >= len(s.stages) {
		return response.Informational("Already in " + s.stageName(current))
	}
	s.applicants[email] = applicant.AtStage(target)
	s.logger.Debug("applicant advanced", "email", email, "from", current, "to", target)
	return response.EchoTokens(cmd.Tokens)
}

// DECIDE <email> <0|1>
func (s *service) decide(cmd command.Command) response.Response {
	if len(cmd.Args) != 2 {
		return response.Shape(cmd.Tokens)
	}
	email, code := cmd.Args[0], cmd.Args[1]
	status, exists := s.applicants[email]
	if !exists {
		return response.Invalid(response.ReferenceError, cmd.Tokens, DetailUnknownEmail)
	}
	current, inPipeline := status.Stage()
	if !inPipeline {
		return response.Invalid(response.ValidationError, cmd.Tokens, DetailAlreadyDecided)
	}

	switch {
	case code == decisionReject:
		s.applicants[email] = applicant.Decided(applicant.Rejected)
		s.logger.Debug("applicant decided", "email", email, "outcome", applicant.Rejected)
		return response.Informational("Rejected " + email)
	case code == decisionHire && current == len(s.stages)-1:
		s.applicants[email] = applicant.Decided(applicant.Hired)
		s.logger.Debug("applicant decided", "email", email, "outcome", applicant.Hired)
		return response.Informational("Hired " + email)
	default:
		return response.Informational("Failed to decide for " + email)
	}
}

// STATS
func (s *service) stats(cmd command.Command) response.Response {
	if len(cmd.Args) != 0 {
		return response.Shape(cmd.Tokens)
	}
	return response.Informational(s.Stats().String())
}
