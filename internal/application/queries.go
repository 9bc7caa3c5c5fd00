package application

import "github.com/bnema/toah-cli/internal/domain"

type SolveResult struct {
	Tour  domain.Tour
	Model *domain.Model
}
