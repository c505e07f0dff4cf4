package usecase

import (
	"time"

	"lokapasar/internal/domain/entity"
)

// messagePrefixLimit membatasi jumlah pesan yang dibaca per chat.
// Menentukan "respons pertama" cukup dari awal percakapan.
const messagePrefixLimit = 50

// ThreadMessages memasangkan satu chat dengan prefix pesannya,
// terurut naik berdasarkan waktu kirim.
type ThreadMessages struct {
	Chat     *entity.Chat
	Messages []*entity.Message
}

// ResponseMetrics adalah hasil estimasi kecepatan respons satu user.
type ResponseMetrics struct {
	AvgResponseTimeMinutes *int
	ResponseRate           float64
}

// estimateResponseMetrics menghitung rata-rata waktu respons dan rasio
// chat yang direspons. Sebuah chat dianggap direspons jika ada pesan
// masuk dari lawan bicara dan user membalas setelahnya; jika user yang
// bicara duluan atau salah satu sisi tidak ada, chat tetap dihitung
// dalam rasio sebagai tidak direspons.
func estimateResponseMetrics(userID string, threads []ThreadMessages) ResponseMetrics {
	metrics := ResponseMetrics{}

	totalThreads := len(threads)
	respondedThreads := 0
	var totalLatency time.Duration

	for _, thread := range threads {
		var firstInbound, firstOutbound *entity.Message

		for _, msg := range thread.Messages {
			if msg.SenderID == userID {
				if firstOutbound == nil {
					firstOutbound = msg
				}
			} else {
				if firstInbound == nil {
					firstInbound = msg
				}
			}
			if firstInbound != nil && firstOutbound != nil {
				break
			}
		}

		if firstInbound == nil || firstOutbound == nil {
			continue
		}
		if !firstOutbound.CreatedAt.After(firstInbound.CreatedAt) {
			// User bicara duluan; tidak ada latensi yang bisa diukur.
			continue
		}

		respondedThreads++
		totalLatency += firstOutbound.CreatedAt.Sub(firstInbound.CreatedAt)
	}

	if respondedThreads > 0 {
		avgLatency := totalLatency / time.Duration(respondedThreads)
		avgMinutes := int(avgLatency.Minutes())
		metrics.AvgResponseTimeMinutes = &avgMinutes
	}

	if totalThreads > 0 {
		metrics.ResponseRate = float64(respondedThreads) / float64(totalThreads) * 100
	}

	return metrics
}
