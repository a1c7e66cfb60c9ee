package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/application"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/movie"
)

// Menu は対話型のコンソールメニュー。業務ルールは一切持たず、
// サービスの呼び出しと結果の表示だけを行う
type Menu struct {
	catalog  *application.CatalogService
	schedule *application.ScheduleService
	booking  *application.BookingService
	in       *bufio.Reader
	out      io.Writer
	validate *validator.Validate
}

func NewMenu(catalog *application.CatalogService, schedule *application.ScheduleService, booking *application.BookingService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		catalog:  catalog,
		schedule: schedule,
		booking:  booking,
		in:       bufio.NewReader(in),
		out:      out,
		validate: newValidator(),
	}
}

// Run はメニューのループを実行する。"0" の入力か入力の終端で戻る
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "映画館管理システムへようこそ！")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- メインメニュー ---")
		fmt.Fprintln(m.out, "1. 映画一覧を見る")
		fmt.Fprintln(m.out, "2. タイトルで映画を探す")
		fmt.Fprintln(m.out, "3. 映画の上映一覧を見る")
		fmt.Fprintln(m.out, "4. 上映を追加する")
		fmt.Fprintln(m.out, "5. チケットを予約する")
		fmt.Fprintln(m.out, "6. 予約一覧を見る")
		fmt.Fprintln(m.out, "7. 予約を取り消す")
		fmt.Fprintln(m.out, "0. 終了")

		choice, err := m.prompt("選択してください: ")
		if err != nil {
			return nil // 入力終端
		}

		switch choice {
		case "1":
			m.handleListMovies(ctx)
		case "2":
			m.handleFindMovies(ctx)
		case "3":
			m.handleScreenings(ctx)
		case "4":
			m.handleAddScreening(ctx)
		case "5":
			m.handleBookTickets(ctx)
		case "6":
			m.handleListBookings(ctx)
		case "7":
			m.handleCancelBooking(ctx)
		case "0":
			fmt.Fprintln(m.out, "ご利用ありがとうございました。")
			return nil
		default:
			fmt.Fprintln(m.out, "無効な選択です。もう一度お試しください。")
		}
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) handleListMovies(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- 映画一覧 ---")
	movies, err := m.catalog.ListMovies(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "エラー: %v\n", err)
		return
	}
	m.printMovies(movies)
}

func (m *Menu) handleFindMovies(ctx context.Context) {
	query, err := m.prompt("検索するタイトルを入力してください: ")
	if err != nil {
		return
	}
	found, err := m.catalog.FindMovies(ctx, query)
	if err != nil {
		fmt.Fprintf(m.out, "エラー: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\n--- %q の検索結果 ---\n", query)
	m.printMovies(found)
}

func (m *Menu) handleScreenings(ctx context.Context) {
	title, err := m.prompt("上映を見る映画のタイトルを入力してください: ")
	if err != nil {
		return
	}
	screenings, err := m.schedule.ScreeningsFor(ctx, title)
	if err != nil {
		fmt.Fprintf(m.out, "エラー: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\n--- %q の上映一覧 ---\n", title)
	if len(screenings) == 0 {
		fmt.Fprintln(m.out, "この映画の上映は現在ありません。")
		return
	}
	for _, s := range screenings {
		fmt.Fprintf(m.out, "  - ID: %s\n", s.ID)
		fmt.Fprintf(m.out, "    時刻: %s\n", s.Time)
		fmt.Fprintf(m.out, "    空席: %d / %d\n", s.AvailableSeats(), s.TotalSeats)
	}
}

func (m *Menu) handleAddScreening(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- 上映の追加 ---")
	title, err := m.prompt("映画の正確なタイトルを入力してください: ")
	if err != nil {
		return
	}
	timeStr, err := m.prompt("上映日時を入力してください（例: 2025-10-28 21:00）: ")
	if err != nil {
		return
	}
	rawSeats, err := m.prompt("座席の総数を入力してください: ")
	if err != nil {
		return
	}
	seats, err := parseCount(rawSeats)
	if err != nil {
		fmt.Fprintln(m.out, "エラー: 座席数は整数で入力してください。")
		return
	}

	req := addScreeningRequest{MovieTitle: title, Time: timeStr, TotalSeats: seats}
	if err := m.validate.Struct(req); err != nil {
		fmt.Fprintln(m.out, "エラー: 入力内容を確認してください。")
		return
	}

	sc, err := m.schedule.AddScreening(ctx, application.AddScreeningInput{
		MovieTitle: req.MovieTitle,
		Time:       req.Time,
		TotalSeats: req.TotalSeats,
	})
	if err != nil {
		fmt.Fprintf(m.out, "エラー: 上映を追加できませんでした（%v）\n", err)
		return
	}
	fmt.Fprintf(m.out, "%q の上映を追加しました！ ID: %s\n", sc.MovieTitle, sc.ID)
}

func (m *Menu) handleBookTickets(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- チケットの予約 ---")
	screeningID, err := m.prompt("上映IDを入力してください: ")
	if err != nil {
		return
	}
	rawTickets, err := m.prompt("何枚予約しますか？ ")
	if err != nil {
		return
	}
	tickets, err := parseCount(rawTickets)
	if err != nil {
		fmt.Fprintln(m.out, "エラー: チケット枚数は整数で入力してください。")
		return
	}

	req := bookTicketsRequest{ScreeningID: screeningID, NumTickets: tickets}
	if err := m.validate.Struct(req); err != nil {
		fmt.Fprintln(m.out, "エラー: 入力内容を確認してください。")
		return
	}

	b, err := m.booking.BookTickets(ctx, req.ScreeningID, req.NumTickets)
	if err != nil {
		fmt.Fprintf(m.out, "予約に失敗しました。上映IDと空席数を確認してください（%v）\n", err)
		return
	}
	fmt.Fprintln(m.out, "\nチケットを予約しました！")
	fmt.Fprintf(m.out, "  映画: %s\n", b.MovieTitle)
	fmt.Fprintf(m.out, "  枚数: %d\n", b.NumTickets)
	fmt.Fprintf(m.out, "  予約ID: %s\n", b.ID)
}

func (m *Menu) handleListBookings(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- 予約一覧 ---")
	bookings, err := m.booking.ListBookings(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "エラー: %v\n", err)
		return
	}
	if len(bookings) == 0 {
		fmt.Fprintln(m.out, "アクティブな予約はまだありません。")
		return
	}
	for _, b := range bookings {
		fmt.Fprintf(m.out, "  - 予約ID: %s\n", b.ID)
		fmt.Fprintf(m.out, "    映画: %s\n", b.MovieTitle)
		fmt.Fprintf(m.out, "    枚数: %d\n", b.NumTickets)
		fmt.Fprintf(m.out, "    上映ID: %s\n", b.ScreeningID)
	}
}

func (m *Menu) handleCancelBooking(ctx context.Context) {
	bookingID, err := m.prompt("取り消す予約IDを入力してください: ")
	if err != nil {
		return
	}

	req := cancelBookingRequest{BookingID: bookingID}
	if err := m.validate.Struct(req); err != nil {
		fmt.Fprintln(m.out, "エラー: 予約IDを入力してください。")
		return
	}

	if err := m.booking.CancelBooking(ctx, req.BookingID); err != nil {
		fmt.Fprintf(m.out, "エラー: 予約を取り消せませんでした（%v）\n", err)
		return
	}
	fmt.Fprintf(m.out, "予約 %s を取り消しました。\n", req.BookingID)
}

func (m *Menu) printMovies(movies []*movie.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(m.out, "映画が見つかりませんでした。")
		return
	}
	for _, mv := range movies {
		fmt.Fprintf(m.out, "  - %q (%d年) 監督: %s, 評価: %.1f, ジャンル: %s\n",
			mv.Title, mv.Year, mv.Director, mv.Rating, strings.Join(mv.Genres, "、"))
	}
}
