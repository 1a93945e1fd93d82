package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascend-learning/ascend_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
	questSvc   QuestServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface, questSvc QuestServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
		questSvc:   questSvc,
	}
}

// @Summary List domains
// @Description All active domains decorated with the caller's unlock status
// @Tags content
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.DomainCollectionResponse}
// @Router /api/v1/domains [get]
func (h *ContentHandler) GetDomains(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.contentSvc.GetDomains(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get one domain
// @Tags content
// @Produce json
// @Security Bearer
// @Param domainId path string true "Domain ID"
// @Success 200 {object} shared.Response{data=dto.DomainResponse}
// @Router /api/v1/domains/{domainId} [get]
func (h *ContentHandler) GetDomain(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.contentSvc.GetDomain(userID, c.Params("domainId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary List topics in a domain
// @Tags content
// @Produce json
// @Security Bearer
// @Param domainId path string true "Domain ID"
// @Success 200 {object} shared.Response{data=[]dto.TopicResponse}
// @Router /api/v1/domains/{domainId}/topics [get]
func (h *ContentHandler) GetTopics(c *fiber.Ctx) error {
	resp, err := h.contentSvc.GetTopicsByDomain(c.Params("domainId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get one topic
// @Tags content
// @Produce json
// @Security Bearer
// @Param topicId path string true "Topic ID"
// @Success 200 {object} shared.Response{data=dto.TopicResponse}
// @Router /api/v1/topics/{topicId} [get]
func (h *ContentHandler) GetTopic(c *fiber.Ctx) error {
	resp, err := h.contentSvc.GetTopic(c.Params("topicId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary List challenges in a topic
// @Tags content
// @Produce json
// @Security Bearer
// @Param topicId path string true "Topic ID"
// @Success 200 {object} shared.Response{data=[]dto.ChallengeResponse}
// @Router /api/v1/topics/{topicId}/challenges [get]
func (h *ContentHandler) GetChallenges(c *fiber.Ctx) error {
	resp, err := h.contentSvc.GetChallengesByTopic(c.Params("topicId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get one challenge
// @Description Challenge content and hints; the correct answer is never included
// @Tags content
// @Produce json
// @Security Bearer
// @Param challengeId path string true "Challenge ID"
// @Success 200 {object} shared.Response{data=dto.ChallengeResponse}
// @Router /api/v1/challenges/{challengeId} [get]
func (h *ContentHandler) GetChallenge(c *fiber.Ctx) error {
	resp, err := h.contentSvc.GetChallenge(c.Params("challengeId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary List quests in a topic
// @Tags quest
// @Produce json
// @Security Bearer
// @Param topicId path string true "Topic ID"
// @Success 200 {object} shared.Response{data=[]dto.QuestResponse}
// @Router /api/v1/topics/{topicId}/quests [get]
func (h *ContentHandler) GetQuests(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.questSvc.GetQuestsByTopic(userID, c.Params("topicId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get one quest
// @Tags quest
// @Produce json
// @Security Bearer
// @Param questId path string true "Quest ID"
// @Success 200 {object} shared.Response{data=dto.QuestResponse}
// @Router /api/v1/quests/{questId} [get]
func (h *ContentHandler) GetQuest(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.questSvc.GetQuest(userID, c.Params("questId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
